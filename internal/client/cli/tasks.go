package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) list(ctx context.Context, args []string) {

	status := ""
	if len(args) > 0 {
		status = args[0]
	}

	tasks, err := a.api.Tasks(ctx, status)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return
	}

	for _, t := range tasks {
		fmt.Printf("%s  [%s]  %s\n", t.ID, t.Status, t.Title)
		if t.Description != "" {
			fmt.Printf("    %s\n", t.Description)
		}
	}
}

func (a *App) add(ctx context.Context) {

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	task, err := a.api.AddTask(ctx, title, description)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Created task %s\n", task.ID)
}

func (a *App) setStatus(ctx context.Context, id, status string) {

	task, err := a.api.EditTask(ctx, id, status)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Task %s is now %s\n", task.ID, task.Status)
}

func (a *App) delete(ctx context.Context, id string) {

	if err := a.api.DeleteTask(ctx, id); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Deleted task %s\n", id)
}
