package main

import "github.com/cleitonmarx/symbiont-ai-commentapp/internal/app"

func main() {
	err := app.NewCommentApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
