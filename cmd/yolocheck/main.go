package main

import "yolocheck/cmd/yolocheck/cmd"

func main() {
	cmd.Execute()
}
