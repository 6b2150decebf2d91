package view

// Shared glass-panel treatments.
const (
	glassPanel = "backdrop-blur-md bg-white/20 dark:bg-black/20 rounded-3xl p-6 shadow-xl border border-white/30 dark:border-white/10 hover:shadow-2xl transition-all duration-300"
	glassCard  = "backdrop-blur-md bg-white/20 dark:bg-black/20 rounded-2xl shadow-lg border border-white/30 dark:border-white/10 hover:shadow-xl transition-all duration-300"

	tabSelected   = "bg-white/90 dark:bg-zinc-800 text-gray-800 dark:text-gray-100 shadow-md"
	tabUnselected = "text-gray-600 dark:text-gray-300 hover:text-gray-800 dark:hover:text-gray-100"

	companyCurrent = "text-gray-700 dark:text-gray-200"
	companyPast    = "text-gray-500 dark:text-gray-400"
)

// pick joins base with on or off.
func pick(base string, cond bool, on, off string) string {
	if cond {
		return base + " " + on
	}
	return base + " " + off
}

func join(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}
