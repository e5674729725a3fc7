package request

// CreateReport is the body of POST /discussions/:id/reports. A nil ReplyID
// reports the discussion itself.
type CreateReport struct {
	ReplyID *int64 `json:"reply_id"`
	Reason  string `json:"reason" binding:"required"`
}

// ResolveReport is the body of POST /admin/discussion-reports/:id/resolve.
type ResolveReport struct {
	Status string `json:"status" binding:"required"`
}
