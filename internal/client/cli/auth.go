package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/andrejsm/taskkeeper/internal/common"
)

func (a *App) register(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm password", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(confirm)

	user, err := a.api.Register(ctx, name, email, string(password), string(confirm))
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	a.userEmail = user.Email
	fmt.Printf("Registered and logged in as %s\n", user.Email)
}

func (a *App) login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.userEmail = user.Email
	fmt.Printf("Logged in as %s\n", user.Email)
}

func (a *App) logout() {
	a.api.Logout()
	a.userEmail = ""
	fmt.Println("Logged out")
}
