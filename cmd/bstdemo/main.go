package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/e11jah/bst"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

var (
	scenarioPreorder = []int{5, 3, 1, 2, 4, 8, 6, 7, 9}
	scenarioKeys     = []int{2, 4, 7, 8, 1, 5, 6, 3, 9}
)

type demoOptions struct {
	order string
	shape bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing bstdemo: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &demoOptions{}

	rootCmd := &cobra.Command{
		Use:   "bstdemo",
		Short: "Build binary search trees and print their traversals",
		Long: "Without a subcommand, rebuilds a tree from the pre-order " +
			"5 3 1 2 4 8 6 7 9, then builds a balanced tree from 2 4 7 8 1 5 6 3 9.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), opts)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.order, "order", "o", "pre", "traversal order: pre, in, post or level")
	rootCmd.PersistentFlags().BoolVar(&opts.shape, "shape", false, "also print the shape of the tree")

	rootCmd.AddCommand(
		newBuildCmd("balanced [keys...]", "Build a height balanced tree from keys in any order", opts,
			func(t bst.Tree[int, string], keys []int) error {
				return t.BuildBalanced(keys)
			}),
		newBuildCmd("preorder [keys...]", "Rebuild the tree whose pre-order traversal is keys", opts,
			func(t bst.Tree[int, string], keys []int) error {
				return t.BuildFromPreorder(keys)
			}),
		newBuildCmd("insert [keys...]", "Insert keys one by one into an empty tree", opts,
			func(t bst.Tree[int, string], keys []int) error {
				for _, k := range keys {
					if err := t.Insert(k, strconv.Itoa(k)); err != nil {
						return err
					}
				}
				return nil
			}),
	)
	return rootCmd
}

func newBuildCmd(use, short string, opts *demoOptions, build func(bst.Tree[int, string], []int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := bst.ParseOrder(opts.order)
			if err != nil {
				return err
			}
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}

			t := bst.New[int, string]()
			if err := build(t, keys); err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), t, order, opts.shape)
			return nil
		},
	}
}

func runScenario(w io.Writer, opts *demoOptions) error {
	order, err := bst.ParseOrder(opts.order)
	if err != nil {
		return err
	}

	t := bst.New[int, string]()
	if err := t.BuildFromPreorder(scenarioPreorder); err != nil {
		return err
	}
	fmt.Fprintf(w, "from pre-order %v\n", scenarioPreorder)
	printTree(w, t, order, opts.shape)

	if err := t.BuildBalanced(scenarioKeys); err != nil {
		return err
	}
	fmt.Fprintf(w, "balanced from %v\n", scenarioKeys)
	printTree(w, t, order, opts.shape)
	return nil
}

func printTree(w io.Writer, t bst.Tree[int, string], order bst.Order, shape bool) {
	fmt.Fprintf(w, "%s-order: %v\n", order, t.Traverse(order))
	fmt.Fprintf(w, "size: %d height: %d\n", t.Size(), t.Height())
	if shape {
		fmt.Fprint(w, renderShape(t))
	}
}

// renderShape draws the tree with the left child listed first. An absent
// child is shown as "∅" when its sibling exists.
func renderShape(t bst.Tree[int, string]) string {
	root := t.Root()
	if root == nil {
		return treeprint.NewWithRoot("∅").String()
	}
	out := treeprint.NewWithRoot(root.Key())
	addChildren(out, root)
	return out.String()
}

func addChildren(branch treeprint.Tree, n bst.Node[int, string]) {
	left, right := n.Left(), n.Right()
	if left == nil && right == nil {
		return
	}
	for _, child := range []bst.Node[int, string]{left, right} {
		if child == nil {
			branch.AddNode("∅")
			continue
		}
		if child.Left() == nil && child.Right() == nil {
			branch.AddNode(child.Key())
			continue
		}
		addChildren(branch.AddBranch(child.Key()), child)
	}
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, len(args))
	for i, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", a, err)
		}
		keys[i] = k
	}
	return keys, nil
}
