package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// String renders a canonical source-like form of each node. Positions are not
// part of the rendering, so two trees that differ only in locations print the
// same. Map-backed sections print in sorted key order to stay deterministic.

func (p *Program) String() string {
	var b strings.Builder
	for i, def := range p.Definitions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(def.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Bad.Message)
}

func (td *TypeDefinition) String() string {
	return fmt.Sprintf("type %s = %s", td.Name.Value, td.Type.String())
}

func (d *Directive) String() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(d.Name)
	if len(d.Args) > 0 {
		b.WriteString("(")
		b.WriteString(joinExprs(d.Args))
		b.WriteString(")")
	}
	if len(d.Body) > 0 {
		b.WriteString(" { ")
		b.WriteString(joinStmts(d.Body))
		b.WriteString(" }")
	}
	return b.String()
}

func (sd *SystemDefinition) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("system %s {\n", sd.Name.Value))

	if sd.Version != nil {
		b.WriteString(fmt.Sprintf("  version: %s\n", sd.Version.String()))
	}
	if sd.Description != nil {
		b.WriteString(fmt.Sprintf("  description: %s\n", sd.Description.String()))
	}
	if len(sd.Types) > 0 {
		entries := make([]string, 0, len(sd.Types))
		for _, name := range sortedKeys(sd.Types) {
			entries = append(entries, fmt.Sprintf("%s: %s", name, sd.Types[name].String()))
		}
		b.WriteString(fmt.Sprintf("  types { %s }\n", strings.Join(entries, ", ")))
	}
	if len(sd.Inputs) > 0 {
		b.WriteString(fmt.Sprintf("  inputs: [%s]\n", joinExprs(sd.Inputs)))
	}
	if len(sd.Outputs) > 0 {
		b.WriteString(fmt.Sprintf("  outputs: [%s]\n", joinExprs(sd.Outputs)))
	}
	if len(sd.Config) > 0 {
		b.WriteString(fmt.Sprintf("  config { %s }\n", joinExprMap(sd.Config)))
	}
	if len(sd.Subsystems) > 0 {
		entries := make([]string, 0, len(sd.Subsystems))
		for _, name := range sortedKeys(sd.Subsystems) {
			entries = append(entries, sd.Subsystems[name].String())
		}
		b.WriteString(fmt.Sprintf("  subsystems { %s }\n", strings.Join(entries, ", ")))
	}
	if len(sd.State) > 0 {
		entries := make([]string, 0, len(sd.State))
		for _, name := range sortedKeys(sd.State) {
			entries = append(entries, sd.State[name].String())
		}
		b.WriteString(fmt.Sprintf("  state { %s }\n", strings.Join(entries, ", ")))
	}
	if len(sd.Rules) > 0 {
		b.WriteString(fmt.Sprintf("  rules { %s }\n", joinExprMap(sd.Rules)))
	}
	if len(sd.Functions) > 0 {
		entries := make([]string, 0, len(sd.Functions))
		for _, name := range sortedKeys(sd.Functions) {
			entries = append(entries, sd.Functions[name].String())
		}
		b.WriteString(fmt.Sprintf("  functions { %s }\n", strings.Join(entries, " ")))
	}
	if len(sd.Events) > 0 {
		entries := make([]string, 0, len(sd.Events))
		for _, key := range sortedKeys(sd.Events) {
			entries = append(entries, sd.Events[key].String())
		}
		b.WriteString(fmt.Sprintf("  events { %s }\n", strings.Join(entries, " ")))
	}
	if len(sd.Orchestration) > 0 {
		b.WriteString(fmt.Sprintf("  orchestration { %s }\n", joinExprMap(sd.Orchestration)))
	}

	b.WriteString("}")
	return b.String()
}

func (f *FunctionDefinition) String() string {
	var b strings.Builder
	if f.Async {
		b.WriteString("async ")
	}
	b.WriteString(fmt.Sprintf("function %s(%s)", f.Name.Value, joinParams(f.Params)))
	if f.Return != nil {
		b.WriteString(" -> ")
		b.WriteString(f.Return.String())
	}
	b.WriteString(" { ")
	b.WriteString(joinStmts(f.Body))
	b.WriteString(" }")
	return b.String()
}

func (p *Parameter) String() string {
	if p.Type != nil {
		return fmt.Sprintf("%s: %s", p.Name.Value, p.Type.String())
	}
	return p.Name.Value
}

func (ed *EventDeclaration) String() string {
	return fmt.Sprintf("event %s(%s)", ed.Name.Value, joinParams(ed.Params))
}

func (eh *EventHandler) String() string {
	return fmt.Sprintf("on %s(%s) { %s }", eh.Event.Value, joinParams(eh.Params), joinStmts(eh.Body))
}

func (sf *StateField) String() string {
	if sf.Init != nil {
		return fmt.Sprintf("%s: %s = %s", sf.Name.Value, sf.Type.String(), sf.Init.String())
	}
	return fmt.Sprintf("%s: %s", sf.Name.Value, sf.Type.String())
}

func (s *Subsystem) String() string {
	return fmt.Sprintf("%s { %s }", s.Name.Value, joinExprMap(s.Properties))
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	if isWordOp(u.Op) {
		return fmt.Sprintf("(%s %s)", u.Op, u.Value.String())
	}
	return fmt.Sprintf("(%s%s)", u.Op, u.Value.String())
}

func (m *MemberExpr) String() string {
	return fmt.Sprintf("%s.%s", m.Target.String(), m.Property.Value)
}

func (i *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", i.Target.String(), i.Index.String())
}

func (c *CallExpr) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee.String(), joinExprs(c.Args))
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (s *StringLiteral) String() string {
	return strconv.Quote(s.Value)
}

func (b *BooleanLiteral) String() string {
	return strconv.FormatBool(b.Value)
}

func (a *ArrayLiteral) String() string {
	return fmt.Sprintf("[%s]", joinExprs(a.Elements))
}

func (o *ObjectLiteral) String() string {
	entries := make([]string, 0, len(o.Fields))
	for _, f := range o.Fields {
		entries = append(entries, f.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(entries, ", "))
}

func (f *ObjectField) String() string {
	return fmt.Sprintf("%s: %s", f.Key, f.Value.String())
}

func (f *ForallExpr) String() string {
	return fmt.Sprintf("forall (%s in %s) { %s }", f.Var.Value, f.Domain.String(), f.Body.String())
}

func (i *IfStmt) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if (%s) { %s }", i.Cond.String(), joinStmts(i.Then)))
	if len(i.Else) > 0 {
		b.WriteString(fmt.Sprintf(" else { %s }", joinStmts(i.Else)))
	}
	return b.String()
}

func (f *ForStmt) String() string {
	return fmt.Sprintf("for (%s in %s) { %s }", f.Var.Value, f.Domain.String(), joinStmts(f.Body))
}

func (r *ReturnStmt) String() string {
	if r.Value != nil {
		return fmt.Sprintf("return %s", r.Value.String())
	}
	return "return"
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s", l.Name.Value, l.Value.String())
}

func (r *RequireStmt) String() string {
	if r.Message != nil {
		return fmt.Sprintf("require(%s, %s)", r.Cond.String(), r.Message.String())
	}
	return fmt.Sprintf("require(%s)", r.Cond.String())
}

func (e *EmitStmt) String() string {
	return fmt.Sprintf("emit %s(%s)", e.Event.Value, joinExprs(e.Args))
}

func (e *ExprStmt) String() string {
	return e.Expr.String()
}

func (n *NamedType) String() string {
	return n.Name.Value
}

func (a *ArrayType) String() string {
	return a.Elem.String() + "[]"
}

func (o *OptionalType) String() string {
	return o.Inner.String() + "?"
}

func (o *ObjectType) String() string {
	entries := make([]string, 0, len(o.Fields))
	for _, f := range o.Fields {
		entries = append(entries, f.String())
	}
	return fmt.Sprintf("{ %s }", strings.Join(entries, ", "))
}

func (f *ObjectTypeField) String() string {
	return fmt.Sprintf("%s: %s", f.Name.Value, f.Type.String())
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

func joinStmts(stmts []Stmt) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "; ")
}

func joinParams(params []*Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}

func joinExprMap(m map[string]Expr) string {
	entries := make([]string, 0, len(m))
	for _, name := range sortedKeys(m) {
		entries = append(entries, fmt.Sprintf("%s: %s", name, m[name].String()))
	}
	return strings.Join(entries, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isWordOp(op string) bool {
	return len(op) > 0 && op[0] >= 'a' && op[0] <= 'z'
}
