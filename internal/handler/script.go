package handler

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/wepayu/internal/dto"
	"github.com/wepayu/internal/middleware"
)

var varPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Failure - проваленная строка скрипта
type Failure struct {
	Line    int
	Text    string
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("%d: %s: %s", f.Line, f.Message, f.Text)
}

// ScriptResult - итог выполнения одного скрипта
type ScriptResult struct {
	Script   string
	Commands int
	Failures []Failure
}

func (r *ScriptResult) Passed() bool {
	return len(r.Failures) == 0
}

// Runner выполняет приёмочные скрипты построчно
type Runner struct {
	handle middleware.HandlerFunc
	open   func(ctx context.Context) error
	logger *slog.Logger
}

// NewRunner создаёт исполнитель; open вызывается перед каждым скриптом
func NewRunner(handle middleware.HandlerFunc, open func(ctx context.Context) error, logger *slog.Logger) *Runner {
	return &Runner{handle: handle, open: open, logger: logger}
}

// RunFile выполняет скрипт из файла
func (r *Runner) RunFile(ctx context.Context, path string) (*ScriptResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	return r.Run(ctx, path, f)
}

// Run выполняет скрипт; ошибки команд попадают в результат, а не в err
func (r *Runner) Run(ctx context.Context, name string, src io.Reader) (*ScriptResult, error) {
	if err := r.open(ctx); err != nil {
		return nil, fmt.Errorf("failed to open system: %w", err)
	}

	result := &ScriptResult{Script: name}
	vars := make(map[string]string)

	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		stop, failure := r.runLine(ctx, lineNo, text, vars)
		result.Commands++
		if failure != "" {
			result.Failures = append(result.Failures, Failure{Line: lineNo, Text: text, Message: failure})
		}
		if stop {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	r.logger.Info("script finished",
		slog.String("script", name),
		slog.Int("commands", result.Commands),
		slog.Int("failures", len(result.Failures)),
	)
	return result, nil
}

// runLine выполняет строку и возвращает текст провала или пустую строку
func (r *Runner) runLine(ctx context.Context, lineNo int, text string, vars map[string]string) (bool, string) {
	tokens, err := tokenize(text)
	if err != nil {
		return false, err.Error()
	}
	// подстановка после разбиения, значения с пробелами остаются одним токеном
	for i, tok := range tokens {
		tokens[i] = expandVars(tok, vars)
	}

	switch tokens[0] {
	case "quit":
		return true, ""

	case "equalFiles":
		if len(tokens) != 3 {
			return false, "equalFiles exige dois arquivos"
		}
		return false, compareFiles(tokens[1], tokens[2])

	case "expect":
		if len(tokens) < 3 {
			return false, "expect exige valor e comando"
		}
		got, err := r.exec(ctx, lineNo, tokens[2:])
		if err != nil {
			return false, fmt.Sprintf("esperado %q, erro %q", tokens[1], err.Error())
		}
		if got != tokens[1] {
			return false, fmt.Sprintf("esperado %q, obtido %q", tokens[1], got)
		}
		return false, ""

	case "expectError":
		if len(tokens) < 3 {
			return false, "expectError exige mensagem e comando"
		}
		got, err := r.exec(ctx, lineNo, tokens[2:])
		if err == nil {
			return false, fmt.Sprintf("esperado erro %q, obtido %q", tokens[1], got)
		}
		if err.Error() != tokens[1] {
			return false, fmt.Sprintf("esperado erro %q, obtido erro %q", tokens[1], err.Error())
		}
		return false, ""
	}

	// var=comando
	if name, cmdName, ok := strings.Cut(tokens[0], "="); ok && name != "" && cmdName != "" {
		got, err := r.exec(ctx, lineNo, append([]string{cmdName}, tokens[1:]...))
		if err != nil {
			return false, err.Error()
		}
		vars[name] = got
		return false, ""
	}

	if _, err := r.exec(ctx, lineNo, tokens); err != nil {
		return false, err.Error()
	}
	return false, ""
}

func expandVars(tok string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(tok, func(m string) string {
		if v, ok := vars[varPattern.FindStringSubmatch(m)[1]]; ok {
			return v
		}
		return m
	})
}

func (r *Runner) exec(ctx context.Context, lineNo int, tokens []string) (string, error) {
	cmd := &dto.Command{
		Name: tokens[0],
		Args: make(map[string]string, len(tokens)-1),
		Line: lineNo,
	}
	for _, tok := range tokens[1:] {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return "", fmt.Errorf("argumento invalido: %s", tok)
		}
		cmd.Args[key] = value
	}
	return r.handle(ctx, cmd)
}

// tokenize разбивает строку по пробелам, кавычки группируют и удаляются
func tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("aspas nao fechadas")
	}
	if started {
		tokens = append(tokens, current.String())
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("linha vazia")
	}
	return tokens, nil
}

func compareFiles(a, b string) string {
	left, err := os.ReadFile(a)
	if err != nil {
		return err.Error()
	}
	right, err := os.ReadFile(b)
	if err != nil {
		return err.Error()
	}
	if !bytes.Equal(normalizeNewlines(left), normalizeNewlines(right)) {
		return fmt.Sprintf("arquivos diferem: %s %s", a, b)
	}
	return ""
}

func normalizeNewlines(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
}
