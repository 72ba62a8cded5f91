// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"

	"vellum.dev/x/vellum/internal/uci/flag"
)

// NewSchema initializes a command schema replying on replyWriter.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema is the set of commands a Client understands.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers c under c.Name.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is the schema of a single GUI-to-engine command.
type Command struct {
	Name string

	// Parallel commands return to the REPL loop before Run completes,
	// so a long-running "go" doesn't block "stop" or "isready".
	Parallel bool

	Run   func(Interaction) error
	Flags flag.Schema
}

// RunWith parses args against c's flag schema and invokes c.Run.
func (c Command) RunWith(args []string, parallelize bool, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	interaction := Interaction{
		stdout:  schema.replyWriter,
		Command: c,
		Values:  values,
	}

	if parallelize && c.Parallel {
		go func() {
			if err := c.Run(interaction); err != nil {
				interaction.Reply(err)
			}
		}()
		return nil
	}

	return c.Run(interaction)
}

// Interaction carries one command invocation's parsed flags and the
// stream replies are written to.
type Interaction struct {
	stdout io.Writer

	Command
	Values flag.Values
}

// Reply writes a is if to fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes as if to fmt.Printf, with a trailing newline.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
