package response

import "github.com/ojlab/discussions/domain"

type Report struct {
	ReportID          int64  `json:"report_id"`
	DiscussionID      int64  `json:"discussion_id"`
	ReplyID           *int64 `json:"reply_id,omitempty"`
	Reason            string `json:"reason"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
	ProblemAlias      string `json:"problem_alias"`
	DiscussionContent string `json:"discussion_content"`
	ReplyContent      string `json:"reply_content,omitempty"`
	ReporterUsername  string `json:"reporter_username"`
	AuthorUsername    string `json:"author_username"`
}

// NewReportFromDomain: Domain -> Response
func NewReportFromDomain(d *domain.ReportDetail) Report {
	return Report{
		ReportID:          d.ID,
		DiscussionID:      d.DiscussionID,
		ReplyID:           d.ReplyID,
		Reason:            d.Reason,
		Status:            string(d.Status),
		CreatedAt:         d.CreatedAt.Format(DateTimeFormat),
		ProblemAlias:      d.ProblemAlias,
		DiscussionContent: d.DiscussionContent,
		ReplyContent:      d.ReplyContent,
		ReporterUsername:  d.ReporterUsername,
		AuthorUsername:    d.AuthorUsername,
	}
}

type ReportList struct {
	Reports    []Report   `json:"reports"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	PagerItems []PageItem `json:"pager_items"`
}

// PageItem is one entry of the moderation queue's pager widget.
type PageItem struct {
	Class string `json:"class"`
	Label string `json:"label"`
	Page  int    `json:"page"`
}

func NewReportListFromDomain(page domain.ReportPage, pagerItems []PageItem) ReportList {
	reports := make([]Report, len(page.Reports))
	for i := range page.Reports {
		reports[i] = NewReportFromDomain(&page.Reports[i])
	}
	return ReportList{
		Reports:    reports,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		PagerItems: pagerItems,
	}
}
