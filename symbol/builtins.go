package symbol

// CoreLibraryPackage is the package whose types are visible without an import
const CoreLibraryPackage = "java.lang"

var primitiveTypes = setOf("byte", "short", "int", "long", "float", "double", "boolean", "char", "void")

// coreLibraryTypes lists the simple names of the java.lang package, generic
// parameters removed. Nested types keep their enclosing class as a prefix.
var coreLibraryTypes = setOf(
	// Interfaces
	"Appendable",
	"AutoCloseable",
	"CharSequence",
	"Cloneable",
	"Comparable",
	"Iterable",
	"Readable",
	"Runnable",
	"Thread.UncaughtExceptionHandler",

	// Classes
	"Boolean",
	"Byte",
	"Character",
	"Character.Subset",
	"Character.UnicodeBlock",
	"Class",
	"ClassLoader",
	"ClassValue",
	"Compiler",
	"Double",
	"Enum",
	"Float",
	"InheritableThreadLocal",
	"Integer",
	"Long",
	"Math",
	"Number",
	"Object",
	"Package",
	"Process",
	"ProcessBuilder",
	"ProcessBuilder.Redirect",
	"Runtime",
	"RuntimePermission",
	"SecurityManager",
	"Short",
	"StackTraceElement",
	"StrictMath",
	"String",
	"StringBuffer",
	"StringBuilder",
	"System",
	"Thread",
	"ThreadGroup",
	"ThreadLocal",
	"Throwable",
	"Void",

	// Enums
	"Character.UnicodeScript",
	"ProcessBuilder.Redirect.Type",
	"Thread.State",

	// Exceptions
	"ArithmeticException",
	"ArrayIndexOutOfBoundsException",
	"ArrayStoreException",
	"ClassCastException",
	"ClassNotFoundException",
	"CloneNotSupportedException",
	"EnumConstantNotPresentException",
	"Exception",
	"IllegalAccessException",
	"IllegalArgumentException",
	"IllegalMonitorStateException",
	"IllegalStateException",
	"IllegalThreadStateException",
	"IndexOutOfBoundsException",
	"InstantiationException",
	"InterruptedException",
	"NegativeArraySizeException",
	"NoSuchFieldException",
	"NoSuchMethodException",
	"NullPointerException",
	"NumberFormatException",
	"ReflectiveOperationException",
	"RuntimeException",
	"SecurityException",
	"StringIndexOutOfBoundsException",
	"TypeNotPresentException",
	"UnsupportedOperationException",

	// Errors
	"AbstractMethodError",
	"AssertionError",
	"BootstrapMethodError",
	"ClassCircularityError",
	"ClassFormatError",
	"Error",
	"ExceptionInInitializerError",
	"IllegalAccessError",
	"IncompatibleClassChangeError",
	"InstantiationError",
	"InternalError",
	"LinkageError",
	"NoClassDefFoundError",
	"NoSuchFieldError",
	"NoSuchMethodError",
	"OutOfMemoryError",
	"StackOverflowError",
	"ThreadDeath",
	"UnknownError",
	"UnsatisfiedLinkError",
	"UnsupportedClassVersionError",
	"VerifyError",
	"VirtualMachineError",

	// Annotations
	"Deprecated",
	"Override",
	"SafeVarargs",
	"SuppressWarnings",
)

// IsPrimitive reports whether name is one of the nine primitive type names
func IsPrimitive(name string) bool {
	_, ok := primitiveTypes[name]
	return ok
}

// IsCoreLibraryType reports whether name is visible from java.lang without
// an import
func IsCoreLibraryType(name string) bool {
	_, ok := coreLibraryTypes[name]
	return ok
}

func setOf(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
