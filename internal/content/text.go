package content

var (
	ProfileName     = "Rassai Said"
	ProfileInitials = "RS"
	ProfileLocation = "Austin, TX"

	ProfileBio = `Crafting seamless experiences with modular microservices, intelligent AI agents,
and end‑to‑end DevOps on cloud‑native infrastructure.

Pursuing my final year of studies at **ENSI**, Tangier.`

	MapImage = "/assets/images/map.svg"
)
