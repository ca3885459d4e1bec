/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/taskchat/chatctl/cmd"

func main() {
	cmd.Execute()
}
