package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func (a *App) attach(ctx context.Context, taskID, path string) {

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file: %v", err)
		return
	}

	attachment, err := a.api.AttachFile(ctx, taskID, filepath.Base(path), data)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Attached %s to task %s\n", attachment.FileName, taskID)
}

func (a *App) attachments(ctx context.Context, taskID string) {

	list, err := a.api.Attachments(ctx, taskID)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(list) == 0 {
		fmt.Println("No attachments")
		return
	}

	for _, att := range list {
		fmt.Printf("%s  %s\n    %s\n", att.ID, att.FileName, att.URL)
	}
}
