package main

import "github.com/mouse-blink/gatehound/cmd"

func main() {
	cmd.Execute()
}
