// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package document

import (
	"github.com/dalzilio/qcl"
)

// FaultTreeNode is the serialized form of a qcl.FaultTree. The name of a
// node, if any, is ignored.
type FaultTreeNode struct {
	Type     string         `yaml:"type"`
	Index    *int           `yaml:"index"`
	Name     string         `yaml:"name"`
	Subtree1 *FaultTreeNode `yaml:"subtree1"`
	Subtree2 *FaultTreeNode `yaml:"subtree2"`
}

// DecodeFaultTree parses a serialized fault tree.
func DecodeFaultTree(data []byte) (*qcl.FaultTree, error) {
	var node FaultTreeNode
	if err := unmarshal("DecodeFaultTree", data, &node); err != nil {
		return nil, err
	}
	return node.FaultTree()
}

// DecodeTree parses either a serialized fault tree or a document with an ft
// field, such as the input of the propagate and splits commands.
func DecodeTree(data []byte) (*qcl.FaultTree, error) {
	var doc struct {
		FT            *FaultTreeNode `yaml:"ft"`
		FaultTreeNode `yaml:",inline"`
	}
	if err := unmarshal("DecodeTree", data, &doc); err != nil {
		return nil, err
	}
	if doc.FT != nil {
		return doc.FT.FaultTree()
	}
	return doc.FaultTreeNode.FaultTree()
}

// FaultTree returns the fault tree described by n.
func (n *FaultTreeNode) FaultTree() (*qcl.FaultTree, error) {
	return n.faulttree(0)
}

func fterror(format string, a ...interface{}) error {
	return qcl.Errorf("DecodeFaultTree", qcl.ErrInput, format, a...)
}

func (n *FaultTreeNode) faulttree(depth int) (*qcl.FaultTree, error) {
	if n == nil {
		return nil, fterror("missing fault tree")
	}
	if MaxDepth > 0 && depth > MaxDepth {
		return nil, fterror("fault tree deeper than %d", MaxDepth)
	}
	switch n.Type {
	case "":
		return nil, fterror("missing type in fault tree")
	case "wire":
		if n.Index == nil {
			return nil, fterror("missing index in wire")
		}
		if *n.Index < 0 {
			return nil, fterror("negative wire index (%d)", *n.Index)
		}
		return qcl.Wire(*n.Index), nil
	case "and", "or", "pand":
	default:
		return nil, fterror("unknown fault tree type %q", n.Type)
	}
	if n.Subtree1 == nil {
		return nil, fterror("missing subtree1 in %s gate", n.Type)
	}
	if n.Subtree2 == nil {
		return nil, fterror("missing subtree2 in %s gate", n.Type)
	}
	left, err := n.Subtree1.faulttree(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := n.Subtree2.faulttree(depth + 1)
	if err != nil {
		return nil, err
	}
	switch n.Type {
	case "and":
		return qcl.And(left, right), nil
	case "or":
		return qcl.Or(left, right), nil
	default:
		return qcl.Pand(left, right), nil
	}
}
