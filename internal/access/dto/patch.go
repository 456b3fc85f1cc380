package dto

// PatchGrantInput updates fields of the single grant addressed by AppID
// (canonical ID or name). Pointer fields distinguish "absent" from zero
// values; at least one must be supplied.
type PatchGrantInput struct {
	AppID           string  `json:"app_id"`
	Status          *string `json:"status"`
	Role            *string `json:"role"`
	IsSessionActive *bool   `json:"is_session_active"`
}
