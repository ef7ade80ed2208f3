package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spigell/web3-navigator/internal/logger"
	"github.com/spigell/web3-navigator/internal/navigator"
	"github.com/spigell/web3-navigator/internal/report"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Answer the five signal questions and get a recommendation",
	RunE: func(_ *cobra.Command, _ []string) error {
		return interactive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// questions lists the signal prompts in ask order. The keys match the
// mapstructure tags on navigator.Signals.
var questions = []struct {
	key   string
	label string
}{
	{"need-privacy", "Need for privacy (0-10)"},
	{"need-formal", "Need for formal verification / proofs (0-10)"},
	{"need-throughput", "Need for high throughput (0-10)"},
	{"latency-tolerance", "Tolerance for higher latency / proving time (0-10)"},
	{"crypto-experience", "Average team cryptography experience (0-10)"},
}

func interactive() error {
	logger, err := logger.New(viper.GetBool("log-json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	defaults := navigator.DefaultSignals()
	if config != nil && config.Defaults != nil {
		defaults = *config.Defaults
	}

	answers, err := askSignals(defaults)
	if err != nil {
		logger.Fatal("reading the answers", zap.Error(err))
	}

	signals, err := decodeSignals(answers)
	if err != nil {
		logger.Fatal("decoding the answers", zap.Error(err))
	}
	signals = signals.Clamp()

	results := navigator.ScoreAll(signals, navigator.Deps{Logger: logger})
	summary := results.Summarize()

	out, err := report.Render(signals, results, summary, viper.GetBool("output.json"))
	if err != nil {
		logger.Fatal("rendering the report", zap.Error(err))
	}

	fmt.Print(out)

	return nil
}

// askSignals prompts for every signal and returns the raw answers keyed by
// signal name. An empty answer keeps the default.
func askSignals(defaults navigator.Signals) (map[string]string, error) {
	fallback := map[string]float64{
		"need-privacy":      defaults.NeedPrivacy,
		"need-formal":       defaults.NeedFormal,
		"need-throughput":   defaults.NeedThroughput,
		"latency-tolerance": defaults.LatencyTolerance,
		"crypto-experience": defaults.CryptoExperience,
	}

	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		def := strconv.FormatFloat(fallback[q.key], 'f', -1, 64)

		prompt := promptui.Prompt{
			Label:     q.label,
			Default:   def,
			AllowEdit: true,
			Validate:  validateSignal,
		}

		answer, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q.key, err)
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = def
		}
		answers[q.key] = answer
	}

	return answers, nil
}

// decodeSignals converts the raw answers into signals. The decode is weakly
// typed since promptui hands back strings.
func decodeSignals(answers map[string]string) (navigator.Signals, error) {
	var signals navigator.Signals

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &signals,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return signals, err
	}

	if err := decoder.Decode(answers); err != nil {
		return signals, err
	}

	return signals, nil
}

// validateSignal accepts any numeric text. Range is not checked here, values
// outside 0-10 are clamped later.
func validateSignal(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	if _, err := strconv.ParseFloat(input, 64); err != nil {
		return fmt.Errorf("%q is not a number", input)
	}

	return nil
}
