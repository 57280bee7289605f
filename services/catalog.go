package services

// DefaultPositions is the standard VR production hierarchy, in pipeline order.
// It seeds the positions collection and serves as the role list for projects
// that have not narrowed their required roles.
var DefaultPositions = []string{
	"Chef de projet / Direction de production",
	"Scénariste immersif",
	"Directeur artistique",
	"Modeleur 3D",
	"Animateur 3D",
	"Cadreur vidéo 360",
	"Monteur vidéo 360",
	"Sound designer",
	"Intégrateur Unity",
	"Intégrateur WebGL",
	"Développeur VR senior",
	"Comédien",
	"QA / Test VR",
}

// RoleColors maps each standard role to its timeline color.
var RoleColors = map[string]string{
	"Chef de projet / Direction de production": "#475569",
	"Scénariste immersif":                      "#0ea5e9",
	"Directeur artistique":                     "#8b5cf6",
	"Modeleur 3D":                              "#10b981",
	"Animateur 3D":                             "#34d399",
	"Cadreur vidéo 360":                        "#f59e0b",
	"Monteur vidéo 360":                        "#d97706",
	"Sound designer":                           "#ec4899",
	"Intégrateur Unity":                        "#6366f1",
	"Intégrateur WebGL":                        "#4f46e5",
	"Développeur VR senior":                    "#1d4ed8",
	"Comédien":                                 "#f43f5e",
	"QA / Test VR":                             "#94a3b8",
}

// RoleColor returns the timeline color of a role, falling back to the neutral
// default for custom positions.
func RoleColor(role string) string {
	if c, ok := RoleColors[role]; ok {
		return c
	}
	return DefaultTaskColor
}

// ProjectTypeOptions returns the list of supported production types.
var ProjectTypeOptions = []string{
	"UnityVR",
	"WebGL",
	"Video360",
	"Hybrid",
}

// Global margin slider bounds. The default applies to new projects.
const (
	MarginMin     = 10
	MarginMax     = 70
	MarginStep    = 5
	MarginDefault = 40
)
