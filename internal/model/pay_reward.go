package model

type GetMyPayRewardsRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetMyPayRewardsResponse struct {
	PayRewards []PayReward `json:"pay_rewards"`
}

type SettlePayRewardRequest struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	TxSignature string `json:"tx_signature"`
}

type SettlePayRewardResponse struct {
	PayReward PayReward `json:"pay_reward"`
}
