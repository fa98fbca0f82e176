package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer, list each command once
	names := make(map[*Command][]string)
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		names[cmd] = append(names[cmd], name)
	}
	var list []*Command
	for cmd, ns := range names {
		slices.Sort(ns)
		list = append(list, cmd)
	}
	slices.SortFunc(list, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, cmd := range list {
		line := indent + strings.Join(names[cmd], ", ")
		if cmd.Func.IsValid() {
			for i := range cmd.Func.Type().NumIn() {
				in := cmd.Func.Type().In(i)
				if in.Kind() == reflect.Pointer {
					line += fmt.Sprintf(" [%s]", in.Elem().Kind())
				} else {
					line += fmt.Sprintf(" <%s>", in.Kind())
				}
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			writeCommands(w, cmd.Subs, depth+1)
		}
	}
}
