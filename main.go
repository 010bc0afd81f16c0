package main

import "github.com/discourselab/speechviz/cmd"

func main() {
	cmd.Execute()
}
