package profile

import "centrodrinks/internal/domain"

// Merge overlays edits on top of existing, field by field. A field present
// in edits always wins; existing values only survive where the edit left
// the field empty. Photo and uid are carried from existing unless edited.
func Merge(existing, edits domain.Profile) domain.Profile {
	merged := existing
	if edits.Name != "" {
		merged.Name = edits.Name
	}
	if edits.Age != "" {
		merged.Age = edits.Age
	}
	if edits.Nickname != "" {
		merged.Nickname = edits.Nickname
	}
	if edits.Street != "" {
		merged.Street = edits.Street
	}
	if edits.Phone != "" {
		merged.Phone = edits.Phone
	}
	if edits.LocationNote != "" {
		merged.LocationNote = edits.LocationNote
	}
	if edits.PhotoURL != "" {
		merged.PhotoURL = edits.PhotoURL
	}
	return merged
}
