package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aberg/wordbergler/internal/model"
)

// Interviewer collects profile facts through a prompt flow. Prompts go
// to out; answers are read line by line from in
type Interviewer struct {
	in  *bufio.Reader
	out io.Writer
	err error
}

// NewInterviewer creates an interviewer reading answers from in and
// writing prompts to out
func NewInterviewer(in io.Reader, out io.Writer) *Interviewer {
	return &Interviewer{in: bufio.NewReader(in), out: out}
}

// Run asks for every profile fact in order. Blank answers skip a
// field. The length bounds in rules double as interview defaults and
// are updated in place when answered
func (iv *Interviewer) Run(rules *model.RulesConfig) (*model.Profile, error) {
	p := &model.Profile{}

	p.Names = iv.askCSV("Victim name(s): ")
	p.Relatives = iv.askCSV("Relative name(s): ")
	p.Others = iv.askCSV("Other notable name(s): ")

	p.Brands = iv.askCSV("Favorite brand(s): ")
	p.Shows = iv.askCSV("Favorite TV show(s)/Genres: ")
	p.Actors = iv.askCSV("Favorite actor(s): ")
	p.Hobbies = iv.askCSV("Favorite hobby/activities: ")

	p.Dates = iv.askCSV("Important date(s) (YYYY / DDMM): ")
	p.Phones = iv.askCSV("Phone number(s): ")
	p.PINs = iv.askCSV("PIN / short number(s) or symbols: ")
	p.Extra = iv.askCSV("Extra base words (e.g., Pass, Secret): ")

	p.BirthYear = iv.askInt("Victim's birth year (blank if unknown): ", 0)
	rules.MinLength = iv.askInt(fmt.Sprintf("Minimum password length (default %d): ", rules.MinLength), rules.MinLength)
	rules.MaxLength = iv.askInt(fmt.Sprintf("Maximum password length (default %d): ", rules.MaxLength), rules.MaxLength)

	return p, iv.err
}

// askLine prompts and reads one answer line. End of input counts as a
// blank answer so piped partial input works; after a real read error
// every later answer is blank
func (iv *Interviewer) askLine(prompt string) string {
	if iv.err != nil {
		return ""
	}

	fmt.Fprint(iv.out, prompt)
	line, err := iv.in.ReadString('\n')
	if err != nil && err != io.EOF {
		iv.err = fmt.Errorf("read answer: %w", err)
		return ""
	}

	return strings.TrimSpace(line)
}

// askCSV prompts for comma-separated values and returns them trimmed,
// with empty entries dropped
func (iv *Interviewer) askCSV(prompt string) []string {
	raw := iv.askLine(prompt)
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// askInt prompts for a number. Blank or unparseable answers fall back
// to def
func (iv *Interviewer) askInt(prompt string, def int) int {
	raw := iv.askLine(prompt)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return n
}
