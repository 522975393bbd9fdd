package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (td *TypeDefinition) NodePos() Position    { return td.Pos }
func (td *TypeDefinition) NodeEndPos() Position { return td.EndPos }
func (*TypeDefinition) NodeType() NodeType      { return TYPE_DEFINITION }

func (sd *SystemDefinition) NodePos() Position    { return sd.Pos }
func (sd *SystemDefinition) NodeEndPos() Position { return sd.EndPos }
func (*SystemDefinition) NodeType() NodeType      { return SYSTEM_DEFINITION }

func (d *Directive) NodePos() Position    { return d.Pos }
func (d *Directive) NodeEndPos() Position { return d.EndPos }
func (*Directive) NodeType() NodeType     { return DIRECTIVE }

func (f *FunctionDefinition) NodePos() Position    { return f.Pos }
func (f *FunctionDefinition) NodeEndPos() Position { return f.EndPos }
func (*FunctionDefinition) NodeType() NodeType     { return FUNCTION_DEFINITION }

func (p *Parameter) NodePos() Position    { return p.Pos }
func (p *Parameter) NodeEndPos() Position { return p.EndPos }
func (*Parameter) NodeType() NodeType     { return PARAMETER }

func (ed *EventDeclaration) NodePos() Position    { return ed.Pos }
func (ed *EventDeclaration) NodeEndPos() Position { return ed.EndPos }
func (*EventDeclaration) NodeType() NodeType      { return EVENT_DECLARATION }

func (eh *EventHandler) NodePos() Position    { return eh.Pos }
func (eh *EventHandler) NodeEndPos() Position { return eh.EndPos }
func (*EventHandler) NodeType() NodeType      { return EVENT_HANDLER }

func (sf *StateField) NodePos() Position    { return sf.Pos }
func (sf *StateField) NodeEndPos() Position { return sf.EndPos }
func (*StateField) NodeType() NodeType      { return STATE_FIELD }

func (s *Subsystem) NodePos() Position    { return s.Pos }
func (s *Subsystem) NodeEndPos() Position { return s.EndPos }
func (*Subsystem) NodeType() NodeType     { return SUBSYSTEM }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (m *MemberExpr) NodePos() Position    { return m.Pos }
func (m *MemberExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (n *NumberLiteral) NodePos() Position    { return n.Pos }
func (n *NumberLiteral) NodeEndPos() Position { return n.EndPos }
func (*NumberLiteral) NodeType() NodeType     { return NUMBER_LITERAL }

func (s *StringLiteral) NodePos() Position    { return s.Pos }
func (s *StringLiteral) NodeEndPos() Position { return s.EndPos }
func (*StringLiteral) NodeType() NodeType     { return STRING_LITERAL }

func (b *BooleanLiteral) NodePos() Position    { return b.Pos }
func (b *BooleanLiteral) NodeEndPos() Position { return b.EndPos }
func (*BooleanLiteral) NodeType() NodeType     { return BOOLEAN_LITERAL }

func (a *ArrayLiteral) NodePos() Position    { return a.Pos }
func (a *ArrayLiteral) NodeEndPos() Position { return a.EndPos }
func (*ArrayLiteral) NodeType() NodeType     { return ARRAY_LITERAL }

func (o *ObjectLiteral) NodePos() Position    { return o.Pos }
func (o *ObjectLiteral) NodeEndPos() Position { return o.EndPos }
func (*ObjectLiteral) NodeType() NodeType     { return OBJECT_LITERAL }

func (f *ObjectField) NodePos() Position    { return f.Pos }
func (f *ObjectField) NodeEndPos() Position { return f.EndPos }
func (*ObjectField) NodeType() NodeType     { return OBJECT_FIELD }

func (f *ForallExpr) NodePos() Position    { return f.Pos }
func (f *ForallExpr) NodeEndPos() Position { return f.EndPos }
func (*ForallExpr) NodeType() NodeType     { return FORALL_EXPR }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (l *LetStmt) NodePos() Position    { return l.Pos }
func (l *LetStmt) NodeEndPos() Position { return l.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (r *RequireStmt) NodePos() Position    { return r.Pos }
func (r *RequireStmt) NodeEndPos() Position { return r.EndPos }
func (*RequireStmt) NodeType() NodeType     { return REQUIRE_STMT }

func (e *EmitStmt) NodePos() Position    { return e.Pos }
func (e *EmitStmt) NodeEndPos() Position { return e.EndPos }
func (*EmitStmt) NodeType() NodeType     { return EMIT_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (n *NamedType) NodePos() Position    { return n.Pos }
func (n *NamedType) NodeEndPos() Position { return n.EndPos }
func (*NamedType) NodeType() NodeType     { return NAMED_TYPE }

func (a *ArrayType) NodePos() Position    { return a.Pos }
func (a *ArrayType) NodeEndPos() Position { return a.EndPos }
func (*ArrayType) NodeType() NodeType     { return ARRAY_TYPE }

func (o *OptionalType) NodePos() Position    { return o.Pos }
func (o *OptionalType) NodeEndPos() Position { return o.EndPos }
func (*OptionalType) NodeType() NodeType     { return OPTIONAL_TYPE }

func (o *ObjectType) NodePos() Position    { return o.Pos }
func (o *ObjectType) NodeEndPos() Position { return o.EndPos }
func (*ObjectType) NodeType() NodeType     { return OBJECT_TYPE }

func (f *ObjectTypeField) NodePos() Position    { return f.Pos }
func (f *ObjectTypeField) NodeEndPos() Position { return f.EndPos }
func (*ObjectTypeField) NodeType() NodeType     { return OBJECT_TYPE_FIELD }
