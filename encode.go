package finbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// CommandType identifies the kind of fact a persisted JSONL line carries.
type CommandType string

const (
	CmdItem       CommandType = "item"
	CmdSetBalance CommandType = "set-balance"
	CmdSave       CommandType = "save"
	CmdWithdraw   CommandType = "withdraw"
	CmdGoal       CommandType = "goal"
	CmdAdvanced   CommandType = "advanced"
)

// This file persists the book and the goals as JSONL streams, one
// command-typed line per canonical fact, human-readable and git-friendly.
// Only canonical facts are written: the per-month records are derived state
// and are rebuilt on decode.

func encodeLine(w io.Writer, v json.Marshaler) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal line: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger's canonical facts to an io.Writer in JSONL
// format: items in insertion order, then opening-balance overrides by month,
// then savings movements in recorded order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for t := range l.Items() {
		var jw jsonObjectWriter
		jw.Append("command", CmdItem)
		jw.EmbedFrom(t)
		if err := encodeLine(w, &jw); err != nil {
			return err
		}
	}
	for m, amount := range l.OpeningBalances() {
		var jw jsonObjectWriter
		jw.Append("command", CmdSetBalance)
		jw.Append("month", m)
		jw.EmbedFrom(amount)
		if err := encodeLine(w, &jw); err != nil {
			return err
		}
	}
	for _, mv := range l.Movements() {
		cmd, amount := CmdSave, mv.Amount
		if mv.Amount.IsNegative() {
			cmd, amount = CmdWithdraw, mv.Amount.Neg()
		}
		var jw jsonObjectWriter
		jw.Append("command", cmd)
		jw.Append("month", mv.Month)
		jw.EmbedFrom(amount)
		if err := encodeLine(w, &jw); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of command-typed lines and returns the
// ledger with all derived state recomputed.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command on line %d: %w", i, err)
		}

		switch identifier.Command {
		case CmdItem:
			var t TransactionItem
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid item on line %d: %w", i, err)
			}
			if t.ID == "" {
				return nil, fmt.Errorf("invalid item on line %d: missing id", i)
			}
			if _, exists := l.items[t.ID]; exists {
				return nil, fmt.Errorf("invalid item on line %d: id %q is already defined", i, t.ID)
			}
			l.items[t.ID] = t
			l.order = append(l.order, t.ID)
		case CmdSetBalance:
			m, amount, err := decodeMonthAmount(line)
			if err != nil {
				return nil, fmt.Errorf("invalid set-balance on line %d: %w", i, err)
			}
			l.openings[m] = amount
		case CmdSave:
			m, amount, err := decodeMonthAmount(line)
			if err != nil {
				return nil, fmt.Errorf("invalid save on line %d: %w", i, err)
			}
			l.movements = append(l.movements, SavingsMovement{Month: m, Amount: amount})
		case CmdWithdraw:
			m, amount, err := decodeMonthAmount(line)
			if err != nil {
				return nil, fmt.Errorf("invalid withdraw on line %d: %w", i, err)
			}
			l.movements = append(l.movements, SavingsMovement{Month: m, Amount: amount.Neg()})
		default:
			return nil, fmt.Errorf("unknown command %q on line %d", identifier.Command, i)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	l.rebuild()
	return l, nil
}

// decodeMonthAmount parses the month and the embedded amount shared by the
// set-balance, save and withdraw lines.
func decodeMonthAmount(line []byte) (Month, Money, error) {
	var temp struct {
		jsonAmount
		Month Month `json:"month"`
	}
	if err := json.Unmarshal(line, &temp); err != nil {
		return Month{}, Money{}, err
	}
	if temp.Month.IsZero() {
		return Month{}, Money{}, fmt.Errorf("missing month")
	}
	return temp.Month, temp.Money(), nil
}

// EncodeGoals persists the goal book to an io.Writer in JSONL format: one
// line per goal in insertion order, then the last advanced month when the
// book has ever been advanced.
func EncodeGoals(w io.Writer, b *GoalBook) error {
	for _, g := range b.Goals() {
		var jw jsonObjectWriter
		jw.Append("command", CmdGoal)
		jw.EmbedFrom(g)
		if err := encodeLine(w, &jw); err != nil {
			return err
		}
	}
	if !b.LastAdvanced().IsZero() {
		var jw jsonObjectWriter
		jw.Append("command", CmdAdvanced)
		jw.Append("month", b.LastAdvanced())
		if err := encodeLine(w, &jw); err != nil {
			return err
		}
	}
	return nil
}

// DecodeGoals reads a JSONL stream of command-typed lines and returns the
// goal book.
func DecodeGoals(r io.Reader) (*GoalBook, error) {
	b := NewGoalBook()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command on line %d: %w", i, err)
		}

		switch identifier.Command {
		case CmdGoal:
			var g Goal
			if err := json.Unmarshal(line, &g); err != nil {
				return nil, fmt.Errorf("invalid goal on line %d: %w", i, err)
			}
			if g.ID == "" {
				return nil, fmt.Errorf("invalid goal on line %d: missing id", i)
			}
			b.goals = append(b.goals, g)
		case CmdAdvanced:
			var temp struct {
				Month Month `json:"month"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, fmt.Errorf("invalid advanced on line %d: %w", i, err)
			}
			b.advanced = temp.Month
		default:
			return nil, fmt.Errorf("unknown command %q on line %d", identifier.Command, i)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return b, nil
}
