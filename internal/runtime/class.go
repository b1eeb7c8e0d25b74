package runtime

import "vellum/internal/object"

// NewClass allocates a class with no superclass bound yet and an empty
// method table. fieldCount is object.BuiltinFieldCount for a built-in
// class whose instances are not a plain field vector (§4.6).
func (vm *VM) NewClass(name *object.String, fieldCount int, flags object.ClassFlags) *object.Class {
	c := &object.Class{
		Name:            name,
		FieldCount:      fieldCount,
		SuperFieldCount: 0,
		Methods:         vm.NewDict(),
		Flags:           flags,
	}
	vm.InitializeObject(c, object.TypeClass, nil)
	return c
}

// BindSuperclass links sub to super and copies every one of super's
// methods into sub's own method table (§4.6, §9's "method dictionary
// copy-at-inheritance-time" design note). Dispatch never walks a
// superclass chain at call time; inheritance is a point-in-time copy,
// not a live delegation link.
//
// sub.FieldCount (the subclass's own additional fields, as counted by
// the out-of-scope compiler) must already be set; BindSuperclass adds
// super's field count on top of it and records SuperFieldCount so a
// later CreateInstance knows how many leading slots belong to super.
//
// super.FieldCount is already cumulative over its own ancestors (§3:
// "total fields in this class and all ancestors"), so sub's
// SuperFieldCount is exactly super.FieldCount — not
// super.SuperFieldCount + super.FieldCount, which would double-count
// everything above super for any chain deeper than two levels.
func (vm *VM) BindSuperclass(sub, super *object.Class) {
	if super.Flags&object.Uninheritable != 0 || super.FieldCount == object.BuiltinFieldCount {
		vm.RaiseError("class %s is not inheritable", string(super.Name.Bytes))
		return
	}
	sub.Super = super
	sub.SuperFieldCount = super.FieldCount
	if !sub.IsBuiltin() {
		sub.FieldCount += sub.SuperFieldCount
	}

	it := super.Methods.Iterate()
	for k := it.Next(); !k.IsUndefined(); k = it.Next() {
		sub.Methods.Set(k, super.Methods.Get(k))
	}
}

// BindMethod installs method under name on class (§4.6). It performs no
// wrapping: every kind of method is built by the caller (NewPrimitiveMethod,
// NewForeignMethod, NewBoundMethod, NewUnboundMethod) before it is installed.
func (vm *VM) BindMethod(class *object.Class, name *object.String, method *object.Method) {
	class.Methods.Set(object.FromObject(name), object.FromObject(method))
}

// ResolveMethod looks up name on class's own method table, which — per
// BindSuperclass's copy-at-inheritance-time model — already contains
// every inherited method. There is no fallback walk to Super.
func (vm *VM) ResolveMethod(class *object.Class, name *object.String) (*object.Method, bool) {
	v := class.Methods.Get(object.FromObject(name))
	if v.IsUndefined() || v.IsNull() {
		return nil, false
	}
	m, ok := v.Obj.(*object.Method)
	return m, ok
}

// CreateInstance allocates an Instance of class with class.FieldCount
// fields, all initialized to Null (§4.6). class must not be a built-in
// (IsBuiltin()) — built-ins use SpecialCreation and allocate their own
// representation through a dedicated constructor instead.
func (vm *VM) CreateInstance(class *object.Class) *object.Instance {
	if class.IsBuiltin() {
		vm.RaiseError("class %s requires special creation", string(class.Name.Bytes))
		return nil
	}
	inst := &object.Instance{Fields: object.NewInstanceFields(class.FieldCount)}
	vm.InitializeObject(inst, object.TypeInstance, class)
	return inst
}
