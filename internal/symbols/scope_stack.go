package symbols

import (
	"github.com/compiscript/compiscript/internal/typesystem"
)

// ScopeStack is the stack of live scopes the walker pushes and pops as it
// enters and leaves constructs. The root is always the global scope.
type ScopeStack struct {
	stack []*Scope
}

func NewScopeStack() *ScopeStack {
	return &ScopeStack{}
}

// Current returns the top of the stack. It panics on an empty stack:
// the walker must push the global scope before using it.
func (ss *ScopeStack) Current() *Scope {
	if len(ss.stack) == 0 {
		panic("symbols: empty scope stack, push the global scope first")
	}
	return ss.stack[len(ss.stack)-1]
}

// Push creates a scope of the given kind under the current top.
func (ss *ScopeStack) Push(kind ScopeKind) *Scope {
	var parent *Scope
	if len(ss.stack) > 0 {
		parent = ss.stack[len(ss.stack)-1]
	}
	s := NewScope(kind, parent)
	ss.stack = append(ss.stack, s)
	return s
}

// PushFunction creates a function scope recording the declared return type
// and function name.
func (ss *ScopeStack) PushFunction(ret typesystem.Type, name string) *Scope {
	s := ss.Push(FunctionScope)
	s.ReturnType = ret
	s.Name = name
	return s
}

// PushClass creates a class scope recording the class name.
func (ss *ScopeStack) PushClass(name string) *Scope {
	s := ss.Push(ClassScope)
	s.Name = name
	return s
}

// PushChild reuses an existing scope as a child of the current top. It is
// how a function's closure scope is made visible during call checking; the
// scope is not re-recorded in any Children list. A scope that already lies
// on the current parent chain is pushed without reparenting, otherwise the
// chain would cycle and Resolve would never terminate.
func (ss *ScopeStack) PushChild(child *Scope) *Scope {
	if len(ss.stack) == 0 {
		child.Parent = nil
		ss.stack = append(ss.stack, child)
		return child
	}
	top := ss.stack[len(ss.stack)-1]
	onChain := false
	for s := top; s != nil; s = s.Parent {
		if s == child {
			onChain = true
			break
		}
	}
	if !onChain {
		child.Parent = top
	}
	ss.stack = append(ss.stack, child)
	return child
}

// Pop removes and returns the top scope. It panics on an empty stack.
func (ss *ScopeStack) Pop() *Scope {
	if len(ss.stack) == 0 {
		panic("symbols: pop on empty scope stack")
	}
	top := ss.stack[len(ss.stack)-1]
	ss.stack = ss.stack[:len(ss.stack)-1]
	return top
}

// Depth returns the number of scopes on the stack.
func (ss *ScopeStack) Depth() int { return len(ss.stack) }

// Empty reports whether no scope has been pushed yet.
func (ss *ScopeStack) Empty() bool { return len(ss.stack) == 0 }

// Inside reports whether any scope on the stack, innermost outward, has the
// given kind. A linear scan: the stack is never deep.
func (ss *ScopeStack) Inside(kind ScopeKind) bool {
	for i := len(ss.stack) - 1; i >= 0; i-- {
		if ss.stack[i].Kind == kind {
			return true
		}
	}
	return false
}

// Enclosing returns the nearest scope of the given kind, innermost outward,
// or nil when none is on the stack.
func (ss *ScopeStack) Enclosing(kind ScopeKind) *Scope {
	for i := len(ss.stack) - 1; i >= 0; i-- {
		if ss.stack[i].Kind == kind {
			return ss.stack[i]
		}
	}
	return nil
}

// Root returns the bottom scope, or nil when nothing has been pushed.
func (ss *ScopeStack) Root() *Scope {
	if len(ss.stack) == 0 {
		return nil
	}
	return ss.stack[0]
}
