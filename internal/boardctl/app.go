package boardctl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/goboard/internal/common"
)

type App struct {
	client   *Client
	reader   *bufio.Reader
	out      io.Writer
	token    string
	username string
}

func NewApp(client *Client, in io.Reader, out io.Writer) *App {
	return &App{client: client, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.username
	}
	return "not logged in"
}

func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, username, email, password); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			fmt.Fprintln(a.out, "Username or email already registered")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	info, err := a.client.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Incorrect username or password")
			return nil
		}
		return err
	}

	a.token = info.AccessToken
	a.username = info.User.Username
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.username = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) List(ctx context.Context) error {

	page, err := a.client.ListQuestions(ctx, 0, 20)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d question(s) total\n", page.Total)
	for _, q := range page.Items {
		fmt.Fprintf(a.out, "#%d  %s  (%s)\n", q.ID, q.Subject, q.CreateDate.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {

	raw, err := GetSimpleText(a.reader, "Enter question id", a.out)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id")
		return nil
	}

	detail, err := a.client.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Question not found")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "#%d  %s\n%s\n", detail.ID, detail.Subject, detail.Content)
	for _, ans := range detail.Answers {
		fmt.Fprintf(a.out, "  - %s\n", ans.Content)
	}
	return nil
}

func (a *App) Ask(ctx context.Context) error {

	subject, err := GetSimpleText(a.reader, "Enter subject", a.out)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Enter question text", a.out)
	if err != nil {
		return err
	}

	question, err := a.client.AskQuestion(ctx, a.token, subject, content)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created question #%d\n", question.ID)
	return nil
}

func (a *App) Answer(ctx context.Context) error {

	raw, err := GetSimpleText(a.reader, "Enter question id", a.out)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id")
		return nil
	}

	content, err := GetMultiline(a.reader, "Enter answer text", a.out)
	if err != nil {
		return err
	}

	if _, err := a.client.AnswerQuestion(ctx, a.token, id, content); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Question not found")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Answer posted")
	return nil
}
