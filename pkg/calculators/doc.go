/*
Package calculators holds the agronomic calculator catalog.

Every calculator is a calc.Module built from a dsl field declaration and a pure
compute function over a typed input struct. All returns the modules in catalog
order; the registry is built from it.

Shared constants:

  - 10 000 m² per hectare.
  - 60 kg per sack.
  - 0,603 MgO→Mg and 0,7143 CaO→Ca mass fractions.
  - 400 kg/ha of Ca and 240 kg/ha of Mg per cmolc/dm³ in the 0–20 cm layer.
  - 600 converts L/ha·km/h·m to L/min; 10 converts m·km/h to ha/h.
*/
package calculators
