package firmware

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/supby/gatecfg/internal/configuration"
)

// Parse reads a config.h over the compiled defaults. Unknown defines and
// comments are ignored, defines not present keep their default.
func Parse(r io.Reader) (configuration.Configuration, error) {
	cfg := configuration.Default()

	strs := map[string]*string{
		DefineWifiSSID:         &cfg.Wifi.SSID,
		DefineWifiPassword:     &cfg.Wifi.Password,
		DefineMqttServer:       &cfg.Mqtt.Address,
		DefineMqttUser:         &cfg.Mqtt.Username,
		DefineMqttPassword:     &cfg.Mqtt.Password,
		DefineTopicGateControl: &cfg.Topics.GateControl,
		DefineTopicGateStatus:  &cfg.Topics.GateStatus,
		DefineTopicRfidScan:    &cfg.Topics.RfidScan,
	}
	ints := map[string]*int{
		DefineMqttPort:         &cfg.Mqtt.Port,
		DefineGateOpenDuration: &cfg.Gate.OpenDurationMs,
	}

	seen := make(map[string]int)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	inComment := false

	for scanner.Scan() {
		lineNo++

		var line string
		line, inComment = stripComments(scanner.Text(), inComment)
		line = strings.TrimSpace(line)

		rest, ok := cutDirective(line)
		if !ok {
			continue
		}

		name, value := splitDefine(rest)
		strDst, isStr := strs[name]
		intDst, isInt := ints[name]
		if !isStr && !isInt {
			continue
		}

		if prev, dup := seen[name]; dup {
			return configuration.Configuration{}, fmt.Errorf("line %d: %v already defined on line %d", lineNo, name, prev)
		}
		seen[name] = lineNo

		if isStr {
			s, err := unquote(value)
			if err != nil {
				return configuration.Configuration{}, fmt.Errorf("line %d: %v: %w", lineNo, name, err)
			}
			*strDst = s
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return configuration.Configuration{}, fmt.Errorf("line %d: %v: not an integer: %w", lineNo, name, err)
		}
		*intDst = n
	}

	if err := scanner.Err(); err != nil {
		return configuration.Configuration{}, err
	}

	return cfg, nil
}

func cutDirective(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	line = strings.TrimSpace(line[1:])
	if !strings.HasPrefix(line, "define") {
		return "", false
	}
	rest := line[len("define"):]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}

	return strings.TrimSpace(rest), true
}

func splitDefine(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}

	return s[:i], strings.TrimSpace(s[i+1:])
}

// stripComments removes // and /* */ comments from line, carrying an open
// block comment across lines. Comment markers inside string literals are
// kept. A block comment counts as whitespace.
func stripComments(line string, inComment bool) (string, bool) {
	b := strings.Builder{}
	inString := false

	for i := 0; i < len(line); i++ {
		if inComment {
			if strings.HasPrefix(line[i:], "*/") {
				inComment = false
				i++
				b.WriteByte(' ')
			}
			continue
		}

		ch := line[i]
		if inString {
			b.WriteByte(ch)
			switch ch {
			case '\\':
				if i+1 < len(line) {
					i++
					b.WriteByte(line[i])
				}
			case '"':
				inString = false
			}
			continue
		}

		switch {
		case ch == '"':
			inString = true
			b.WriteByte(ch)
		case strings.HasPrefix(line[i:], "//"):
			return b.String(), false
		case strings.HasPrefix(line[i:], "/*"):
			inComment = true
			i++
		default:
			b.WriteByte(ch)
		}
	}

	return b.String(), inComment
}

var simpleEscapes = map[byte]byte{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'?':  '?',
}

// unquote reads a C string literal. Only whitespace may follow the closing
// quote, comments are already stripped.
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return "", fmt.Errorf("expected string literal, got %q", s)
	}

	b := strings.Builder{}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			if tail := strings.TrimSpace(s[i+1:]); tail != "" {
				return "", fmt.Errorf("unexpected %q after string literal", tail)
			}
			return b.String(), nil
		case '\\':
			i++
			if i >= len(s) {
				return "", fmt.Errorf("unterminated escape")
			}

			if esc, ok := simpleEscapes[s[i]]; ok {
				b.WriteByte(esc)
				continue
			}

			var (
				digits string
				base   int
			)
			switch {
			case s[i] == 'x':
				j := i + 1
				for j < len(s) && isHexDigit(s[j]) {
					j++
				}
				digits, base = s[i+1:j], 16
				i = j - 1
			case isOctalDigit(s[i]):
				j := i
				for j < len(s) && j < i+3 && isOctalDigit(s[j]) {
					j++
				}
				digits, base = s[i:j], 8
				i = j - 1
			default:
				return "", fmt.Errorf("unsupported escape \\%c", s[i])
			}

			if digits == "" {
				return "", fmt.Errorf("\\x used with no following hex digits")
			}
			n, err := strconv.ParseUint(digits, base, 8)
			if err != nil {
				return "", fmt.Errorf("escape \\%v out of range for a byte", digits)
			}
			b.WriteByte(byte(n))
		default:
			b.WriteByte(ch)
		}
	}

	return "", fmt.Errorf("unterminated string literal")
}

func isHexDigit(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isOctalDigit(ch byte) bool {
	return '0' <= ch && ch <= '7'
}
