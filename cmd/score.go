package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spigell/web3-navigator/internal/logger"
	"github.com/spigell/web3-navigator/internal/navigator"
	"github.com/spigell/web3-navigator/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the three architecture profiles against your signals",
	RunE: func(_ *cobra.Command, _ []string) error {
		return score()
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	defaults := navigator.DefaultSignals()

	scoreCmd.Flags().Float64("need-privacy", defaults.NeedPrivacy, "how strong is your need for privacy, 0-10")
	scoreCmd.Flags().Float64("need-formal", defaults.NeedFormal, "how strong is your need for formal verification / proofs, 0-10")
	scoreCmd.Flags().Float64("need-throughput", defaults.NeedThroughput, "how strong is your need for high throughput, 0-10")
	scoreCmd.Flags().Float64("latency-tolerance", defaults.LatencyTolerance, "tolerance for higher latency / proving time, 0-10")
	scoreCmd.Flags().Float64("crypto-experience", defaults.CryptoExperience, "average team cryptography experience, 0-10")
	scoreCmd.Flags().BoolP("json", "j", false, "output the report as json instead of a human-readable summary")

	viper.BindPFlag("defaults.need-privacy", scoreCmd.Flags().Lookup("need-privacy"))
	viper.BindPFlag("defaults.need-formal", scoreCmd.Flags().Lookup("need-formal"))
	viper.BindPFlag("defaults.need-throughput", scoreCmd.Flags().Lookup("need-throughput"))
	viper.BindPFlag("defaults.latency-tolerance", scoreCmd.Flags().Lookup("latency-tolerance"))
	viper.BindPFlag("defaults.crypto-experience", scoreCmd.Flags().Lookup("crypto-experience"))
	viper.BindPFlag("output.json", scoreCmd.Flags().Lookup("json"))
}

// score runs a full scoring pass: resolve signals, clamp, score, rank, render.
func score() error {
	logger, err := logger.New(viper.GetBool("log-json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the web3-navigator", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	signals := navigator.DefaultSignals()
	if config != nil && config.Defaults != nil {
		signals = *config.Defaults
	}
	signals = signals.Clamp()

	logger.Debug("scoring with signals",
		zap.Float64("need_privacy", signals.NeedPrivacy),
		zap.Float64("need_formal", signals.NeedFormal),
		zap.Float64("need_throughput", signals.NeedThroughput),
		zap.Float64("latency_tolerance", signals.LatencyTolerance),
		zap.Float64("crypto_experience", signals.CryptoExperience),
	)

	results := navigator.ScoreAll(signals, navigator.Deps{Logger: logger})
	summary := results.Summarize()

	logger.Debug("recommendation ready",
		zap.String("best", summary.Best),
		zap.Float64("best_fit_score", summary.BestFitScore),
		zap.String("best_fit_label", summary.BestFitLabel),
	)

	out, err := report.Render(signals, results, summary, viper.GetBool("output.json"))
	if err != nil {
		logger.Fatal("rendering the report", zap.Error(err))
	}

	fmt.Print(out)

	return nil
}
