package commands

import (
	"sort"
	"strings"

	"bothint/internal/domain"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Registry holds the bot commands available in the composer, in definition order
type Registry struct {
	commands []domain.Command
	index    map[string]int
}

// NewRegistry builds a registry. Identifiers are normalised and the first
// definition of a name wins; entries with an empty name are skipped.
func NewRegistry(cmds []domain.Command) *Registry {
	r := &Registry{index: make(map[string]int, len(cmds))}
	for _, c := range cmds {
		name := domain.NormalizeName(c.Command)
		if name == "" {
			continue
		}
		if _, dup := r.index[name]; dup {
			continue
		}
		r.index[name] = len(r.commands)
		r.commands = append(r.commands, domain.Command{
			Command:     name,
			Description: strings.TrimSpace(c.Description),
		})
	}
	return r
}

// All returns a copy of every command in definition order
func (r *Registry) All() []domain.Command {
	out := make([]domain.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.commands)
}

// Lookup finds a command by name, with or without the leading slash
func (r *Registry) Lookup(name string) (domain.Command, bool) {
	i, ok := r.index[domain.NormalizeName(name)]
	if !ok {
		return domain.Command{}, false
	}
	return r.commands[i], true
}

// Suggest returns the commands matching what the user has typed so far.
// It returns nil unless input is a bare slash word ("/", "/ba"): once the
// user types a space they are writing arguments, not picking a command.
func (r *Registry) Suggest(input string) []domain.Command {
	if !strings.HasPrefix(input, "/") {
		return nil
	}
	query := input[1:]
	if strings.ContainsAny(query, " \t\n") {
		return nil
	}
	if query == "" {
		return r.All()
	}

	var out []domain.Command
	seen := make(map[string]bool)

	lower := strings.ToLower(query)
	for _, c := range r.commands {
		if strings.HasPrefix(strings.ToLower(c.Command), lower) {
			out = append(out, c)
			seen[c.Command] = true
		}
	}

	names := make([]string, 0, len(r.commands))
	for _, c := range r.commands {
		if !seen[c.Command] {
			names = append(names, c.Command)
		}
	}
	matches := fuzzy.RankFindFold(query, names)
	// Stable so equal distances keep definition order
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].OriginalIndex < matches[j].OriginalIndex
	})
	for _, m := range matches {
		out = append(out, r.commands[r.index[m.Target]])
	}
	return out
}

// ParseInvocation recognises a sent message of the form "/name args".
// ok is false when the text is not a slash command or the name is unknown.
func (r *Registry) ParseInvocation(text string) (cmd domain.Command, args string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return domain.Command{}, "", false
	}
	name, rest, _ := strings.Cut(text[1:], " ")
	cmd, ok = r.Lookup(name)
	if !ok {
		return domain.Command{}, "", false
	}
	return cmd, strings.TrimSpace(rest), true
}
