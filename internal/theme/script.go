package theme

// PrePaintScript must be inlined in <head> ahead of stylesheets. It runs
// synchronously, so the root class is settled before the first paint even when
// the server could not see the OS preference. Storage access is wrapped so a
// blocked localStorage falls back to the cookie and then to matchMedia.
const PrePaintScript = `(function () {
  var stored = null;
  try { stored = window.localStorage.getItem("theme"); } catch (e) {}
  if (!stored) {
    var m = document.cookie.match(/(?:^|;\s*)theme=([^;]+)/);
    if (m) { stored = m[1]; }
  }
  var prefersDark = false;
  try { prefersDark = window.matchMedia("(prefers-color-scheme: dark)").matches; } catch (e) {}
  var dark = stored === "dark" || (!stored && prefersDark);
  var root = document.documentElement;
  if (dark) { root.classList.add("dark"); } else { root.classList.remove("dark"); }
  root.style.colorScheme = dark ? "dark" : "light";
})();`
