package model

type CheckInRequest struct{}

type CheckInResponse struct {
	Streak           int    `json:"streak"`
	Reward           int64  `json:"reward"`
	AlreadyCheckedIn bool   `json:"already_checked_in"`
	PayRewardID      string `json:"pay_reward_id,omitempty"`
}
