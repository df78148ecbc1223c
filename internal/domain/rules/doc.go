// Package rules contiene el motor de consistencia entre contratos e inventario:
// formato de seriales por empresa, compuertas de validación de Costumer y
// Contract, y la derivación de estado "en uso" de un POS por fecha.
//
// Son funciones puras sin acceso a persistencia; los casos de uso las invocan
// siempre antes de escribir, de modo que una violación aborta la escritura
// completa.
package rules
