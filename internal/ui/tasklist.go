package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	yaml "gopkg.in/yaml.v3"

	"github.com/josephgoksu/todo/models"
)

// TaskView is the structured form of a listed task.
type TaskView struct {
	Index       int    `json:"index" yaml:"index" toml:"index"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Date        string `json:"date" yaml:"date" toml:"date"`
}

// TaskViews converts the list into views in list order.
func TaskViews(list *models.TaskList) []TaskView {
	tasks := list.Tasks()
	views := make([]TaskView, 0, len(tasks))
	for i, task := range tasks {
		views = append(views, TaskView{
			Index:       i,
			Description: task.Description,
			Date:        task.CreatedAt.Format(models.DateLayout),
		})
	}
	return views
}

// ListRenderer renders a task list for display.
type ListRenderer struct {
	// Locale controls number formatting in the summary line.
	Locale language.Tag
	// Styled enables lipgloss styling and the summary line. When false the
	// output is exactly TaskList.Print.
	Styled bool
}

// NewListRenderer parses locale (falling back to English) and returns a renderer.
func NewListRenderer(locale string, styled bool) *ListRenderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &ListRenderer{Locale: tag, Styled: styled}
}

// Render writes the list in the given format: text, json, yaml or toml.
func (r *ListRenderer) Render(w io.Writer, list *models.TaskList, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		r.renderText(w, list)
		return nil
	case "json":
		data, err := json.MarshalIndent(TaskViews(list), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(TaskViews(list))
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "toml":
		// TOML has no top-level arrays.
		doc := struct {
			Tasks []TaskView `toml:"tasks"`
		}{Tasks: TaskViews(list)}
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("marshal toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func (r *ListRenderer) renderText(w io.Writer, list *models.TaskList) {
	if !r.Styled {
		list.Print(w)
		return
	}

	if list.Len() == 0 {
		fmt.Fprintln(w, StyleEmpty.Render(models.EmptyListMessage))
		return
	}

	fmt.Fprintln(w, StyleHeader.Render("Tasks:"))
	for i, task := range list.Tasks() {
		fmt.Fprintf(w, "%s %s %s\n",
			StyleIndex.Render(fmt.Sprintf("%d:", i)),
			StyleDate.Render(task.CreatedAt.Format(models.DisplayLayout)),
			StyleText.Render(task.Description),
		)
	}
	fmt.Fprintln(w, StyleSubtle.Render(r.Summary(list.Len())))
}

// Confirm formats a confirmation line for an add or remove. Styled output
// gets a green check mark; plain output is msg unchanged.
func (r *ListRenderer) Confirm(msg string) string {
	if !r.Styled {
		return msg
	}
	return Icon(IconDone, StyleSuccess) + " " + msg
}

// Summary returns a localized count line such as "1,204 tasks".
func (r *ListRenderer) Summary(n int) string {
	p := message.NewPrinter(r.Locale)
	if n == 1 {
		return p.Sprintf("%d task", n)
	}
	return p.Sprintf("%d tasks", n)
}
