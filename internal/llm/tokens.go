package llm

import "fmt"

const runesPerToken = 3.0

// RoughEstimateTokens guesses a token count from the rune length, never
// less than one.
func RoughEstimateTokens(text string) int {
	tokens := int(float64(len([]rune(text))) / runesPerToken)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

// CheckTokenLimit rejects text whose estimate is above limit. A limit of
// zero or less disables the check.
func CheckTokenLimit(text string, limit int) error {
	if limit <= 0 {
		return nil
	}
	if estimated := RoughEstimateTokens(text); estimated > limit {
		return fmt.Errorf("message is too long: estimated %d tokens, limit is %d", estimated, limit)
	}
	return nil
}
