package numrange

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	value  string
	raw    string
	index  int
	offset int
}

func (this token) fail(err error) *ParseError {

	text := this.value
	if text == "" {
		text = this.raw
	}

	return &ParseError{
		Err:    err,
		Token:  text,
		Index:  this.index,
		Offset: this.offset,
	}
}

// Parse expands an expression like "1-3, 7, 2" into distinct integers.
// Values keep the order in which they first appear unless the config is sorted.
// Empty or blank input yields an empty slice.
func Parse(input string, cfg Config) ([]int, error) {

	cfg = cfg.normalized()

	if strings.TrimSpace(input) == "" {
		return []int{}, nil
	}

	result := []int{}
	seen := map[int]struct{}{}
	var produced uint64

	for _, tok := range tokenize(input, cfg.separator) {

		if tok.value == "" && cfg.skipEmpty {
			continue
		}

		bounds, err := parseToken(tok, cfg.rangeSign)
		if err != nil {
			return nil, err
		}

		low, high := bounds[0], bounds[1]

		if cfg.limit > 0 {

			remaining := uint64(cfg.limit) - produced
			if uint64(high)-uint64(low) >= remaining {
				return nil, tok.fail(ErrLimitExceeded)
			}

			produced += uint64(high) - uint64(low) + 1
		}

		for val := low; ; val++ {

			if _, has := seen[val]; !has {
				seen[val] = struct{}{}
				result = append(result, val)
			}

			if val == high {
				break
			}
		}
	}

	if cfg.sorted {
		slices.Sort(result)
	}

	return result, nil
}

func tokenize(input string, separator rune) []token {

	var tokens []token
	var offset int

	for idx := 0; ; idx++ {

		piece, rest, more := strings.Cut(input[offset:], string(separator))

		value := strings.TrimSpace(piece)

		// blank tokens point at the start of the raw piece
		var lead int
		if value != "" {
			lead = len(piece) - len(strings.TrimLeftFunc(piece, unicode.IsSpace))
		}

		tokens = append(tokens, token{
			value:  value,
			raw:    piece,
			index:  idx,
			offset: offset + lead,
		})

		if !more {
			break
		}

		offset = len(input) - len(rest)
	}

	return tokens
}

// parseToken returns inclusive bounds of a token; a single value gets equal bounds
func parseToken(tok token, rangeSign rune) ([2]int, error) {

	if tok.value == "" {
		return [2]int{}, tok.fail(ErrMalformedToken)
	}

	switch strings.Count(tok.value, string(rangeSign)) {

	case 0:

		slog.Debug("numrange: found value",
			slog.String("token", tok.value))

		val, ok := parseInt(tok.value)
		if !ok {
			return [2]int{}, tok.fail(ErrInvalidNumber)
		}

		return [2]int{val, val}, nil

	case 1:

		slog.Debug("numrange: found range",
			slog.String("token", tok.value))

		before, after, _ := strings.Cut(tok.value, string(rangeSign))

		low, err := parseBound(tok, before, 0)
		if err != nil {
			return [2]int{}, err
		}

		high, err := parseBound(tok, after, len(tok.value)-len(after))
		if err != nil {
			return [2]int{}, err
		}

		if low > high {
			return [2]int{}, tok.fail(ErrInvalidRange)
		}

		return [2]int{low, high}, nil

	default:
		return [2]int{}, tok.fail(ErrMalformedToken)
	}
}

func parseBound(tok token, bound string, at int) (int, error) {

	lead := len(bound) - len(strings.TrimLeftFunc(bound, unicode.IsSpace))
	bound = strings.TrimSpace(bound)

	val, ok := parseInt(bound)
	if ok {
		return val, nil
	}

	// an empty bound says nothing, so the whole token is reported instead
	if bound == "" {
		return 0, tok.fail(ErrInvalidNumber)
	}

	return 0, &ParseError{
		Err:    ErrInvalidNumber,
		Token:  bound,
		Index:  tok.index,
		Offset: tok.offset + at + lead,
	}
}

// parseInt accepts base-10 digits with an optional leading minus
func parseInt(val string) (int, bool) {

	digits := strings.TrimPrefix(val, "-")
	if digits == "" {
		return 0, false
	}

	for idx := 0; idx < len(digits); idx++ {
		if digits[idx] < '0' || digits[idx] > '9' {
			return 0, false
		}
	}

	result, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}

	return result, true
}
