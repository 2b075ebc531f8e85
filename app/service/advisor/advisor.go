package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meditrack/app/config"
	"meditrack/app/service/intake"

	_ "embed"

	"github.com/samber/do"
	"github.com/samber/oops"
)

//go:embed summary_prompt_template.txt
var summaryPromptTemplate string

//go:embed advice_prompt_template.txt
var advicePromptTemplate string

const maxGenerateDuration = 30 * time.Second

// New picks the provider configured under advisor.provider. The returned
// advisor is the single external text-generation dependency of the intake
// service.
func New(di *do.Injector) (intake.SummaryAdvisor, error) {
	cfg := do.MustInvoke[*config.Config](di)

	switch cfg.Advisor.Provider {
	case "openai":
		return newOpenAIAdvisor(cfg.Advisor.OpenAI), nil
	case "gemini":
		return newGeminiAdvisor(do.MustInvoke[context.Context](di), cfg.Advisor.Gemini)
	default:
		return nil, oops.Errorf("unknown advisor provider %q", cfg.Advisor.Provider)
	}
}

func buildSummaryPrompt(log intake.HealthLog) string {
	return strings.ReplaceAll(summaryPromptTemplate, "{health_log}", formatHealthLog(log))
}

func buildAdvicePrompt(symptoms []string) string {
	return strings.ReplaceAll(advicePromptTemplate, "{symptoms}", strings.Join(symptoms, ", "))
}

// formatHealthLog renders the log deterministically: initial symptoms in
// detection order, then per-symptom answers in the order they were given.
func formatHealthLog(log intake.HealthLog) string {
	var builder strings.Builder

	builder.WriteString("Initial symptoms: ")
	if len(log.InitialSymptoms) == 0 {
		builder.WriteString("none")
	} else {
		builder.WriteString(strings.Join(log.InitialSymptoms, ", "))
	}
	builder.WriteString("\n")

	for _, detail := range log.Details {
		builder.WriteString("\n" + detail.Symptom + ":\n")
		for _, qa := range detail.Entries {
			fmt.Fprintf(&builder, "- %s\n  %s\n", qa.Question, qa.Answer)
		}
	}

	return builder.String()
}
