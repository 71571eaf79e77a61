package templates

import "github.com/toyz/vtgen/internal/models"

// GenerateVtableStruct emits the typedef struct holding one function
// pointer per method, fields in declared method order
func GenerateVtableStruct(iface *models.InterfaceMetadata) string {
	w := NewCodeWriter()
	WriteDocComment(w, DocLines(iface.Doc))
	w.Writeln("typedef struct " + iface.Name + " {")
	w.Indent()
	for i := range iface.Methods {
		method := &iface.Methods[i]
		WriteDocComment(w, MethodDocLines(method))
		w.Writeln(FunctionPointer(method.Name, method.ReturnType, method.Params) + ";")
	}
	w.Dedent()
	w.Write("} " + iface.Name + ";")
	return w.String()
}

// GeneratePrototype emits a plain prototype for a top-level function
func GeneratePrototype(fn *models.FunctionMetadata) string {
	w := NewCodeWriter()
	WriteDocComment(w, DocLines(fn.Doc))
	w.Write(FunctionSignature(fn.Name, fn.ReturnType, fn.Params) + ";")
	return w.String()
}

// GenerateWrapper emits one calling wrapper for a method. The wrapper is a
// pure trampoline: vtable first, declared parameters unchanged, the
// function pointer loaded into a local binding, and exactly one
// null-handling strategy baked in at generation time.
//
// For mandatory methods (checked=false) the pointer is asserted non-null:
// a null field is a programmer error in vtable construction, signalled
// fatally rather than through the method's return channel. For optional
// methods (checked=true) a null pointer short-circuits to the absence
// value; an empty absence with a unit return means a bare return.
func GenerateWrapper(iface *models.InterfaceMetadata, method *models.MethodMetadata, checked bool, absence string) string {
	w := NewCodeWriter()
	WriteDocComment(w, MethodDocLines(method))

	vtableParam := "const " + iface.Name + "* vtable"
	fieldAccess := "vtable->" + method.Name
	if iface.ByValue {
		vtableParam = iface.Name + " vtable"
		fieldAccess = "vtable." + method.Name
	}

	signature := C11Type(method.ReturnType) + " " + iface.WrapperName(method) + "(" + vtableParam
	if len(method.Params) > 0 {
		signature += ", " + ParamList(method.Params)
	}
	signature += ")"

	call := "(*func_ptr)(" + ArgList(method.Params) + ");"
	if !method.ReturnType.IsUnit() {
		call = "return " + call
	}

	w.Writeln(signature + " {")
	w.Indent()
	w.Writeln(FunctionPointer("func_ptr", method.ReturnType, method.Params) + " = " + fieldAccess + ";")
	if checked {
		w.Writeln("if (func_ptr == NULL) {")
		w.Indent()
		if absence == "" {
			w.Writeln("return;")
		} else {
			w.Writeln("return " + absence + ";")
		}
		w.Dedent()
		w.Writeln("} else {")
		w.Indent()
		w.Writeln(call)
		w.Dedent()
		w.Writeln("}")
	} else {
		w.Writeln("assert(func_ptr != NULL);")
		w.Writeln(call)
	}
	w.Dedent()
	w.Write("}")
	return w.String()
}
