package main

import "github.com/yuhaowen84/timesheet-app/internal/app/server"

func main() {
	server.Run()
}
