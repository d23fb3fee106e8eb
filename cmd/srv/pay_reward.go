package main

import (
	"fmt"

	"github.com/moonticket/backend/internal/domain"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startSettleReward(cctx *cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()
	s.payRewardDomain = domain.NewPayRewardDomain(s.payRewardRepo)

	if cctx.String("id") == "" {
		rewards, err := s.payRewardDomain.GetPendingPayRewards(s.ctx)
		if err != nil {
			return err
		}

		for _, r := range rewards {
			fmt.Fprintf(cctx.App.Writer, "%s\t%s\t%d %s\t%s\t%s\n",
				r.ID, r.Wallet, r.Amount, r.Token, r.Note, r.CreatedAt)
		}
		return nil
	}

	resp, err := s.payRewardDomain.SettlePayReward(s.ctx, &model.SettlePayRewardRequest{
		ID:          cctx.String("id"),
		Status:      cctx.String("status"),
		TxSignature: cctx.String("tx-signature"),
	})
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Pay reward %s is %s", resp.PayReward.ID, resp.PayReward.Status)
	return nil
}
