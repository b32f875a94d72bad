// Package calc is the arithmetic core of the desk calculator: the fixed
// operator set, immediate left-to-right application, the parenthesis frame
// stack and the memory register.
//
// Not here:
// - entry buffer editing, expression echo or history (see session)
// - rendering or key mapping
package calc
