package domain

// Profile holds per-user personal and delivery information, distinct from
// authentication credentials. All fields except Name are optional free text.
type Profile struct {
	UID          string `json:"-"`
	Name         string `json:"name"`
	Age          string `json:"age,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
	Street       string `json:"street,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LocationNote string `json:"locationNote,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
}
