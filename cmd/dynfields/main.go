package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dynfields/pkg/definition/loader"
	"github.com/goliatone/go-dynfields/pkg/fieldkind"
)

func main() {
	list := flag.Bool("list", false, "list registered field kinds")
	validate := flag.String("validate", "", "definition document to validate")
	draft := flag.Bool("new", false, "interactively draft a definition document")
	site := flag.String("site", "default", "site scope for drafted documents")
	model := flag.String("model", "", "owning model for drafted documents")
	flag.Parse()

	registry := fieldkind.Default()

	switch {
	case *list:
		listKinds(registry)
	case *validate != "":
		validateDocument(registry, *validate)
	case *draft:
		if err := draftDocument(registry, *site, *model); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return
			}
			log.Fatalf("draft failed: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func listKinds(registry *fieldkind.Registry) {
	for _, entry := range registry.All() {
		fmt.Printf("%-40s %s\n", entry.Key, entry.Label)
	}
}

func validateDocument(registry *fieldkind.Registry, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	records, err := loader.New(registry).Parse(data)
	if err != nil {
		log.Fatalf("invalid document: %v", err)
	}
	fmt.Printf("%s: %d field definitions OK\n", path, len(records))
}

func draftDocument(registry *fieldkind.Registry, site, model string) error {
	if model == "" {
		if err := survey.AskOne(&survey.Input{Message: "Owning model:"}, &model, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	choices := registry.Choices()
	options := make([]string, len(choices))
	for i, choice := range choices {
		options[i] = fmt.Sprintf("%s (%s)", choice.Label, choice.Value)
	}
	var picked int
	prompt := &survey.Select{Message: "Field kind:", Options: options, PageSize: len(options)}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return err
	}

	var label string
	if err := survey.AskOne(&survey.Input{Message: "Label:"}, &label, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	var required bool
	if err := survey.AskOne(&survey.Confirm{Message: "Required entry?"}, &required); err != nil {
		return err
	}

	doc := loader.Document{
		Site:  site,
		Model: model,
		Fields: []loader.FieldSpec{{
			Label:    label,
			Type:     choices[picked].Value,
			Required: required,
		}},
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
