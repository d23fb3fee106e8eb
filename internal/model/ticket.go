package model

type GetTicketCreditsRequest struct{}

type GetTicketCreditsResponse struct {
	Balance int64 `json:"balance"`
}

type ClaimFreeTicketRequest struct{}

type ClaimFreeTicketResponse struct {
	DrawID  string `json:"draw_id"`
	Balance int64  `json:"balance"`
}

type SubmitTicketsRequest struct {
	Tickets []TicketNumbers `json:"tickets"`
}

type SubmitTicketsResponse struct {
	BatchID string   `json:"batch_id"`
	DrawID  string   `json:"draw_id"`
	Tickets []Ticket `json:"tickets"`
	Balance int64    `json:"balance"`
}

type GetMyTicketsRequest struct{}

type GetMyTicketsResponse struct {
	DrawID  string   `json:"draw_id"`
	Tickets []Ticket `json:"tickets"`
}
