package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/recolor/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	replacer := text.NewSimpleTextReplacer()

	rules := []text.ReplacementRule{
		{FromText: "#22c55e", ToText: "#3b82f6"},
		{FromText: "rgba(34, 197, 94", ToText: "rgba(59, 130, 246"},
	}

	content := strings.NewReader("background-color: #22c55e; box-shadow: rgba(34, 197, 94, 0.5);")

	result, err := replacer.ReplaceText(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: background-color: #3b82f6; box-shadow: rgba(59, 130, 246, 0.5);
	// Changes: 2
	// Was Modified: true
}

func ExampleSimpleTextReplacer_ValidateRules() {
	replacer := text.NewSimpleTextReplacer()

	rules := []text.ReplacementRule{
		{FromText: "foo", ToText: "bar"},
		{ToText: "qux"}, // Missing FromText
	}

	err := replacer.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: from_text is required
}

func ExampleFindCascades() {
	rules := []text.ReplacementRule{
		{FromText: "red", ToText: "green"},
		{FromText: "green", ToText: "blue"},
	}

	for _, c := range text.FindCascades(rules) {
		fmt.Printf("rule %d feeds rule %d\n", c.Producer, c.Consumer)
	}

	// Output:
	// rule 0 feeds rule 1
}
