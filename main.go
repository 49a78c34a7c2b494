package main

import "strava-dashboard/cmd/cli"

func main() {
	cli.Execute()
}
