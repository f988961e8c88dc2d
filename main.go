package main

import "github.com/qontinui/ui-bridge-mcp/cmd"

func main() {
	cmd.Execute()
}
