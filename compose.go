package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/NickyBoy89/methodmap/fst"
	"github.com/NickyBoy89/methodmap/methodid"
	"github.com/NickyBoy89/methodmap/symbol"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// A binding pairs a method or constructor with the class node it is
// identified against
type binding struct {
	method fst.Node
	class  fst.Node
}

// bindMethods superimposes the features in composition order. A class is
// keyed by its package and the names of its enclosing classes, and every
// method of a class is bound to the node of the first feature that declared
// that class. A refinement's methods thus keep their own compilation unit
// while the class keeps the one it was introduced in.
func bindMethods(features []*fst.NonTerminal) []binding {
	introduced := make(map[string]fst.Node)
	var bindings []binding

	for _, feature := range features {
		for _, unit := range fst.ChildrenOfKind(feature, fst.KindCompilationUnit) {
			pkg := symbol.PackageOf(unit)
			for _, class := range fst.ChildrenOfKind(unit, fst.KindClass) {
				bindings = bindClass(class, pkg, introduced, bindings)
			}
		}
	}
	return bindings
}

func bindClass(class fst.Node, path string, introduced map[string]fst.Node, bindings []binding) []binding {
	if path == "" {
		path = class.Name()
	} else {
		path += "." + class.Name()
	}

	owner, seen := introduced[path]
	if !seen {
		introduced[path] = class
		owner = class
	} else {
		log.WithFields(log.Fields{
			"class":   path,
			"feature": class.Feature(),
			"base":    owner.Feature(),
		}).Debug("Refining class")
	}

	for _, child := range class.Children() {
		switch {
		case fst.IsMethodOrConstructor(child):
			bindings = append(bindings, binding{method: child, class: owner})
		case child.Kind() == fst.KindClass:
			bindings = bindClass(child, path, introduced, bindings)
		}
	}
	return bindings
}

// identify builds the identifier of every binding, in parallel. The result
// has the order of bindings.
func identify(ctx context.Context, bindings []binding, opts ...methodid.Option) ([]*methodid.Identifier, error) {
	ids := make([]*methodid.Identifier, len(bindings))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for ind, b := range bindings {
		ind, b := ind, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			id, err := methodid.New(b.method, b.class, opts...)
			if err != nil {
				return fmt.Errorf("feature %s: %w", b.method.Feature(), err)
			}
			ids[ind] = id
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}

// duplicates groups the identifiers by signature and returns the signatures
// that more than one feature contributes, with those features in composition
// order
func duplicates(ids []*methodid.Identifier) map[string][]string {
	features := make(map[string][]string)
	for _, id := range ids {
		sig := id.Signature()
		if !slices.Contains(features[sig], id.OriginFeature) {
			features[sig] = append(features[sig], id.OriginFeature)
		}
	}

	for sig, contributors := range features {
		if len(contributors) < 2 {
			delete(features, sig)
		}
	}
	return features
}
