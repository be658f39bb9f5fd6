package main

import "github.com/vcsaturninus/cinic/cmd"

func main() {
	cmd.Execute()
}
