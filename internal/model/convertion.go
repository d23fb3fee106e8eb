package model

import (
	"time"

	"github.com/moonticket/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertDraw(draw *entity.Draw) Draw {
	if draw == nil {
		return Draw{}
	}

	d := Draw{
		ID:             draw.ID,
		StartTime:      draw.StartTime.UTC().Format(DefaultTimeLayout),
		EndTime:        draw.EndTime.UTC().Format(DefaultTimeLayout),
		WinningNumbers: draw.WinningNumbers,
		Moonball:       draw.Moonball,
		JackpotUSD:     draw.JackpotUSD,
		Winners:        draw.Winners,
	}

	if draw.OutcomeRecordedAt.Valid {
		d.OutcomeRecordedAt = draw.OutcomeRecordedAt.Time.UTC().Format(DefaultTimeLayout)
	}

	return d
}

func ConvertTicket(ticket *entity.Ticket) Ticket {
	if ticket == nil {
		return Ticket{}
	}

	return Ticket{
		ID:        ticket.ID,
		DrawID:    ticket.DrawID,
		BatchID:   ticket.BatchID,
		Numbers:   ticket.Numbers,
		Moonball:  ticket.Moonball,
		CreatedAt: ticket.CreatedAt.UTC().Format(DefaultTimeLayout),
	}
}

func ConvertPurchase(purchase *entity.Purchase) Purchase {
	if purchase == nil {
		return Purchase{}
	}

	return Purchase{
		Signature:   purchase.Signature,
		Wallet:      purchase.Wallet,
		Lamports:    purchase.Lamports,
		TixAmount:   purchase.TixAmount,
		SolPriceUSD: purchase.SolPriceUSD,
		USDSpent:    purchase.USDSpent,
		Entries:     purchase.USDSpent,
		Credits:     purchase.Credits,
		Slot:        purchase.Slot,
		BlockTime:   purchase.BlockTime.UTC().Format(DefaultTimeLayout),
	}
}

func ConvertPayReward(reward *entity.PayReward) PayReward {
	if reward == nil {
		return PayReward{}
	}

	return PayReward{
		ID:          reward.ID,
		Wallet:      reward.Wallet,
		Note:        reward.Note,
		Token:       reward.Token,
		Amount:      reward.Amount,
		Status:      string(reward.Status),
		TxSignature: reward.TxSignature.String,
		CreatedAt:   reward.CreatedAt.UTC().Format(DefaultTimeLayout),
	}
}
