package model

type GetCurrentDrawRequest struct{}

type GetCurrentDrawResponse struct {
	Draw Draw `json:"draw"`
}

type GetLastDrawRequest struct{}

type GetLastDrawResponse struct {
	Draw Draw `json:"draw"`

	// Recorded is false if the outcome of the last window is not known yet.
	Recorded bool `json:"recorded"`
}

type OpenDrawRequest struct {
	At string `json:"at"`
}

type OpenDrawResponse struct {
	Draw Draw `json:"draw"`
}

type RecordDrawOutcomeRequest struct {
	DrawID         string   `json:"draw_id"`
	WinningNumbers []int    `json:"winning_numbers"`
	Moonball       int      `json:"moonball"`
	JackpotUSD     string   `json:"jackpot_usd"`
	Winners        []string `json:"winners"`
}

type RecordDrawOutcomeResponse struct {
	Draw Draw `json:"draw"`
}
