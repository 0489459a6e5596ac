// Command promchat is a terminal chat for a Prometheus question-answering service.
package main

import "github.com/diogo/promchat/internal/commands"

func main() {
	commands.Execute()
}
