package deal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/bran/ddsolve/internal/ddcard"
)

// ParseFile reads one deal per non-blank, non-comment ('#') line of r, in
// the field format "N=... E=... S=... W=... T=NT TS=N M=KH,10S
// Result=N:1,1,1,1,1;E:...;S:...;W:...". A malformed line does not stop
// the scan: its error is appended to the returned multierror and the line
// is skipped rather than aborting the whole file.
func ParseFile(r io.Reader) ([]Input, error) {
	var inputs []Input
	var errs *multierror.Error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		in, err := parseLine(line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		inputs = append(inputs, in)
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return inputs, errs.ErrorOrNil()
}

func parseLine(line string) (Input, error) {
	var in Input
	for _, field := range strings.Fields(line) {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return in, fmt.Errorf("malformed field %q: expected key=value", field)
		}
		switch key {
		case "N":
			in.Hands[ddcard.North] = val
		case "E":
			in.Hands[ddcard.East] = val
		case "S":
			in.Hands[ddcard.South] = val
		case "W":
			in.Hands[ddcard.West] = val
		case "T":
			in.Trump = val
		case "TS":
			in.TurnStarter = val
		case "M":
			if val != "" && val != "-" {
				in.Played = strings.Split(val, ",")
			}
		case "Result":
			rm, err := parseResult(val)
			if err != nil {
				return in, fmt.Errorf("Result: %w", err)
			}
			in.Result = rm
		default:
			return in, fmt.Errorf("unrecognized field %q", key)
		}
	}
	return in, nil
}

func parseResult(val string) (*ResultMatrix, error) {
	var rm ResultMatrix
	for _, group := range strings.Split(val, ";") {
		sideTok, numsTok, ok := strings.Cut(group, ":")
		if !ok {
			return nil, fmt.Errorf("malformed side group %q: expected side:n,n,n,n,n", group)
		}
		side, err := ddcard.ParseSide(upper.String(sideTok))
		if err != nil {
			return nil, fmt.Errorf("side %q: %w", sideTok, err)
		}
		nums := strings.Split(numsTok, ",")
		if len(nums) != ddcard.NumSuits+1 {
			return nil, fmt.Errorf("side %s: expected %d trick counts, got %d", side, ddcard.NumSuits+1, len(nums))
		}
		for i, tok := range nums {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("side %s, column %d: %w", side, i, err)
			}
			rm[side][i] = n
		}
	}
	return &rm, nil
}
