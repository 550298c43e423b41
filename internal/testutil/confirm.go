package testutil

// StubConfirmer answers confirmation prompts from a script and records every
// prompt it was asked. An exhausted script answers false.
type StubConfirmer struct {
	Answers []bool
	Prompts []string
	next    int
}

// NewStubConfirmer creates a confirmer that answers the given decisions in order.
func NewStubConfirmer(answers ...bool) *StubConfirmer {
	return &StubConfirmer{Answers: answers}
}

func (c *StubConfirmer) Confirm(prompt string) (bool, error) {
	c.Prompts = append(c.Prompts, prompt)
	if c.next >= len(c.Answers) {
		return false, nil
	}
	answer := c.Answers[c.next]
	c.next++
	return answer, nil
}
