// Package main provides the interactive bank teller console.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mini-bank/internal/accountrepo"
	"github.com/go-petr/mini-bank/internal/accountservice"
	"github.com/go-petr/mini-bank/internal/consoledelivery"
	"github.com/go-petr/mini-bank/internal/customerrepo"
	"github.com/go-petr/mini-bank/internal/customerservice"
	"github.com/go-petr/mini-bank/internal/middleware"
	"github.com/go-petr/mini-bank/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	overdraftLimit, err := decimal.NewFromString(config.OverdraftLimit)
	if err != nil {
		logger.Fatal().Err(err).Str("overdraft_limit", config.OverdraftLimit).Msg("invalid overdraft limit")
	}

	customerRepo := customerrepo.NewRepoMem()
	accountRepo := accountrepo.NewRepoMem()

	customerService := customerservice.New(customerRepo)
	accountService := accountservice.New(accountRepo, customerRepo, overdraftLimit, config.WithdrawalLimit)

	handler := consoledelivery.NewHandler(customerService, accountService, logger, config.CurrencySymbol)

	logger.Info().Msg("BANK TELLER CONSOLE HAS STARTED")

	if err := handler.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("console session failed")
	}
}
