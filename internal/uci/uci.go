// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package uci implements a minimal UCI (Universal Chess Interface)
// protocol loop: a command schema, a stdin scanner, and the handful of
// commands (isready/quit) every engine answers regardless of what it's
// attached to. This is the stdin/stdout REPL every engine in the pack
// exposes its library through; it carries no board-rendering or
// human-input logic of its own.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"vellum.dev/x/vellum/internal/uci/cmd"
)

// NewClient creates a Client wired to stdin/stdout with the baseline
// isready/quit commands already registered.
func NewClient() Client {
	client := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	client.commands = cmd.NewSchema(client.stdout)

	client.AddCommand(cmdIsReady)
	client.AddCommand(cmdQuit)

	return client
}

// Client is a UCI protocol endpoint: a command schema plus the streams
// it reads commands from and writes replies to.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
}

// AddCommand registers c with the client.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs the read-eval-print loop against c.stdin until a command
// requests quit or the stream ends.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		prompt, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args, true); err {
		case nil:
		case errQuit:
			return nil
		default:
			c.Println(err)
		}
	}
}

// Run executes args as a single non-parallel command.
func (c *Client) Run(args ...string) error {
	return c.RunWith(args, false)
}

// RunWith dispatches args[0] to its registered command with args[1:],
// running it in the background when parallelize is true and the
// command opts into it.
func (c *Client) RunWith(args []string, parallelize bool) error {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return command.RunWith(args, parallelize, c.commands)
}

// Print, Printf, and Println write to the client's reply stream.
func (c *Client) Print(a ...any) (int, error)                 { return fmt.Fprint(c.stdout, a...) }
func (c *Client) Printf(format string, a ...any) (int, error) { return fmt.Fprintf(c.stdout, format, a...) }
func (c *Client) Println(a ...any) (int, error)               { return fmt.Fprintln(c.stdout, a...) }
