package template_test

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

// genTemplates draws a registry of 1..6 templates with arbitrary flags.
func genTemplates(t *rapid.T) []template.Template {
	n := rapid.IntRange(1, 6).Draw(t, "templates")
	out := make([]template.Template, n)
	for i := range out {
		out[i] = template.Template{
			Key:            fmt.Sprintf("tpl%d", i),
			Title:          fmt.Sprintf("Template %d", i),
			Path:           fmt.Sprintf("pages/tpl%d.html", i),
			Regions:        regions(),
			Unique:         rapid.Bool().Draw(t, fmt.Sprintf("unique%d", i)),
			FirstLevelOnly: rapid.Bool().Draw(t, fmt.Sprintf("firstLevel%d", i)),
			NoChildren:     rapid.Bool().Draw(t, fmt.Sprintf("noChildren%d", i)),
		}
	}
	return out
}

// genTree draws a forest of up to 8 pages. Parents always precede children.
func genTree(t *rapid.T, templates []template.Template) *fakeTree {
	tree := newFakeTree()
	n := rapid.IntRange(0, 8).Draw(t, "pages")
	for i := 1; i <= n; i++ {
		tpl := rapid.SampledFrom(templates).Draw(t, fmt.Sprintf("page%dTemplate", i))
		var parent *int64
		if i > 1 && rapid.Bool().Draw(t, fmt.Sprintf("page%dHasParent", i)) {
			parent = ptr(rapid.Int64Range(1, int64(i-1)).Draw(t, fmt.Sprintf("page%dParent", i)))
		}
		tree.pages[int64(i)] = pg(int64(i), tpl.Key, parent)
	}
	return tree
}

// genOptions draws an instance/parent placement that only references pages in the tree.
func genOptions(t *rapid.T, tree *fakeTree) []template.Option {
	var opts []template.Option
	ids := make([]int64, 0, len(tree.pages))
	for id := range tree.pages {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return opts
	}
	// Map iteration order is random.
	slices.Sort(ids)

	if rapid.Bool().Draw(t, "withInstance") {
		id := rapid.SampledFrom(ids).Draw(t, "instance")
		opts = append(opts, template.WithInstance(tree.pages[id]))
	}
	if rapid.Bool().Draw(t, "withParent") {
		id := rapid.SampledFrom(ids).Draw(t, "parent")
		opts = append(opts, template.WithParentID(id))
	}
	return opts
}

func TestProperty_ValidTemplatesMatchesCheck(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		templates := genTemplates(rt)
		reg := template.NewRegistry()
		reg.MustRegister(templates...)
		tree := genTree(rt, templates)
		opts := genOptions(rt, tree)
		v := template.NewValidator(reg, tree)
		ctx := context.Background()

		valid, err := v.ValidTemplates(ctx, opts...)
		if err != nil {
			rt.Fatalf("ValidTemplates() error = %v", err)
		}

		inList := make(map[string]bool, len(valid))
		for _, tpl := range valid {
			inList[tpl.Key] = true
		}
		for _, tpl := range reg.All() {
			checkErr := v.Check(ctx, tpl, opts...)
			if _, isRule := template.AsRuleError(checkErr); checkErr != nil && !isRule {
				rt.Fatalf("Check(%s) unexpected error = %v", tpl.Key, checkErr)
			}
			if (checkErr == nil) != inList[tpl.Key] {
				rt.Fatalf("template %s: Check() = %v but listed = %v", tpl.Key, checkErr, inList[tpl.Key])
			}
		}
	})
}

func TestProperty_CheckIsIdempotent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		templates := genTemplates(rt)
		reg := template.NewRegistry()
		reg.MustRegister(templates...)
		tree := genTree(rt, templates)
		opts := genOptions(rt, tree)
		v := template.NewValidator(reg, tree)
		ctx := context.Background()
		tpl := rapid.SampledFrom(templates).Draw(rt, "checked")

		first := v.Check(ctx, tpl, opts...)
		second := v.Check(ctx, tpl, opts...)
		if fmt.Sprint(first) != fmt.Sprint(second) {
			rt.Fatalf("Check() not idempotent: %v then %v", first, second)
		}
	})
}

func TestProperty_FirstLevelOnlyNeverUnderParent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		templates := genTemplates(rt)
		reg := template.NewRegistry()
		reg.MustRegister(templates...)
		tree := genTree(rt, templates)
		if len(tree.pages) == 0 {
			return
		}
		parentID := rapid.Int64Range(1, int64(len(tree.pages))).Draw(rt, "parent")
		v := template.NewValidator(reg, tree)

		valid, err := v.ValidTemplates(context.Background(), template.WithParentID(parentID))
		if err != nil {
			rt.Fatalf("ValidTemplates() error = %v", err)
		}
		for _, tpl := range valid {
			if tpl.FirstLevelOnly {
				rt.Fatalf("first-level-only template %s offered under parent %d", tpl.Key, parentID)
			}
		}
	})
}

func TestProperty_UniqueHolderKeepsItsTemplate(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		templates := genTemplates(rt)
		for i := range templates {
			templates[i].FirstLevelOnly = false
			templates[i].NoChildren = false
		}
		reg := template.NewRegistry()
		reg.MustRegister(templates...)
		tree := genTree(rt, templates)
		if len(tree.pages) == 0 {
			return
		}
		id := rapid.Int64Range(1, int64(len(tree.pages))).Draw(rt, "instance")
		instance := tree.pages[id]
		own, _ := reg.Lookup(instance.TemplateKey)
		if !own.Unique {
			return
		}
		holders, _ := tree.CountByTemplate(context.Background(), own.Key, 0)
		if holders != 1 {
			return
		}

		v := template.NewValidator(reg, tree)
		if err := v.Check(context.Background(), own, template.WithInstance(instance)); err != nil {
			rt.Fatalf("sole holder %d rejected for its own template: %v", id, err)
		}
		other := &page.Page{Title: "New", Slug: "new", TemplateKey: "tpl0"}
		if err := v.Check(context.Background(), own, template.WithInstance(other)); !template.IsKind(err, template.KindDuplicateUnique) {
			rt.Fatalf("new page accepted for held unique template: %v", err)
		}
	})
}
