package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"finbook"
	"finbook/renderer"
)

const model = "gemini-2.5-pro"

// NewAdvisor creates the budgeting advisor expert. It reads the book and
// goals files lazily on every function call, so the advisor always sees the
// latest saved state.
func NewAdvisor(bookFile, goalsFile string) *Expert {
	lib := []Function{monthReport(bookFile), historyReport(bookFile), goalsReport(goalsFile)}

	return &Expert{
		Name: "Advisor",
		Description: `This is a personal budgeting advisor. It knows the user's declared
		incomes and expenses, the projected balances month by month, and the savings goals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a personal budgeting advisor in charge of the user's finance book.
				The book holds recurring income and expense declarations, a projected
				balance and savings amount for every month, a good/neutral/bad rating per
				month, and savings goals with monthly contributions.

				Use the available tools to look at the actual figures before answering:
				  - the report of a single month
				  - the month-by-month history
				  - the savings goals and their progress

				Ground every statement in those figures. Be concrete and concise, and when
				a month is rated bad, explain which declarations drive it.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// fail builds the error response of a function call.
func fail(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

// succeed builds the output response of a function call.
func succeed(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

// parseMonth reads the optional 'month' argument, defaulting to the current one.
func parseMonth(args map[string]any) (finbook.Month, error) {
	imonth, ok := args["month"]
	if !ok {
		return finbook.ThisMonth(), nil
	}
	smonth, ok := imonth.(string)
	if !ok {
		return finbook.Month{}, fmt.Errorf("argument 'month' is not a string as expected but %T", imonth)
	}
	return finbook.ParseMonth(smonth)
}

func monthReport(bookFile string) *Func {
	const name = "MonthReport"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `MonthReport returns the full report of one month: active incomes and
			expenses, totals, cumulative balance and savings, and the month's rating.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {
						Type:        genai.TypeString,
						Description: "The month to report on, in YYYY-MM form. The current month is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the month.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			m, err := parseMonth(args)
			if err != nil {
				return fail(id, name, err)
			}
			book := finbook.LoadLedger(bookFile)
			return succeed(id, name, renderer.MonthMarkdown(book.PeriodData(m)))
		},
	}
}

func historyReport(bookFile string) *Func {
	const name = "History"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `History returns a month-by-month table over the whole book: income,
			expenses, net, cumulative balance and savings, and rating per month.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table, one row per month.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			book := finbook.LoadLedger(bookFile)
			span, ok := book.Span()
			if !ok {
				return succeed(id, name, "The book is empty.")
			}
			records := make([]finbook.PeriodRecord, 0, span.Len())
			for m := range span.Months() {
				records = append(records, book.PeriodData(m))
			}
			return succeed(id, name, renderer.HistoryMarkdown(span, records))
		},
	}
}

func goalsReport(goalsFile string) *Func {
	const name = "Goals"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Goals returns the savings goals with their targets, monthly contributions and progress.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the goals.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			goals := finbook.LoadGoals(goalsFile)
			return succeed(id, name, renderer.GoalsMarkdown(goals.Goals()))
		},
	}
}
