/*
Package corpus stores named training corpora in a SQLite database so that a
model can be trained from previously saved text instead of a file or standard
input. Only raw text is stored; models are always rebuilt from it.
*/
package corpus
