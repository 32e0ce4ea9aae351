// Package key defines the key and modifier types used by the macro
// language.
//
// Key names the special keys a macro may reference ({ENTER}, {TAB},
// arrow keys and so on); Modifier is a bitset of CTRL, SHIFT, ALT and
// GUI. The WIN, CMD and SUPER names are aliases for GUI, duplicates
// collapse, and combination order is irrelevant.
package key
